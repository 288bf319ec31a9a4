package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
}

var _ SchedulerHandler = (*SchedulerHandlerImpl)(nil)

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	cache  *schedulers.ResultCache
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, cache: schedulers.NewResultCache()}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

// Simulate takes the policy from the :policy route parameter.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	policy, err := schedulers.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.schedule(ctx, policy)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	processes := request.ToProcesses()
	quantum := request.TimeQuantum(s.config.RoundRobinTimeQuantum)

	var response responses.AllResponse
	for _, policy := range schedulers.Policies {
		result, err := s.cache.Simulate(policy, processes, quantum)
		if err != nil {
			return s.fail(ctx, err)
		}
		response.Results = append(response.Results, responses.FromResult(result))
	}
	stats, err := schedulers.AnalyzeWorkload(processes)
	if err != nil {
		return s.fail(ctx, err)
	}
	response.Recommendation = responses.FromRecommendation(stats.Recommend(), stats)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Recommend(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	stats, err := schedulers.AnalyzeWorkload(request.ToProcesses())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(responses.FromRecommendation(stats.Recommend(), stats))
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	quantum := request.TimeQuantum(s.config.RoundRobinTimeQuantum)
	logrus.Infof("schedule request: algorithm=%s jobs=%d quantum=%d", policy, len(request.Jobs), quantum)

	result, err := s.cache.Simulate(policy, request.ToProcesses(), quantum)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(responses.FromResult(result))
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, errors.New("invalid request format")
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidInput) {
		return badRequest(ctx, err)
	}
	logrus.Errorf("can not process request: %v", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

func badRequest(ctx *fiber.Ctx, err error) error {
	logrus.Debugf("rejecting request: %v", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
