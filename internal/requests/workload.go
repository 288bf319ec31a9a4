package requests

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadWorkload reads a YAML (or JSON) workload file into a ScheduleRequests.
// Unknown fields are rejected.
func LoadWorkload(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return ParseWorkload(data)
}

func ParseWorkload(data []byte) (*ScheduleRequests, error) {
	var request ScheduleRequests
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	logrus.Debugf("loaded workload with %d jobs", len(request.Jobs))
	return &request, nil
}
