package dataset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SummaryFilename is the fixed name of the dataset-level summary file.
const SummaryFilename = "dataset_summary.yaml"

// DatasetInfo aggregates the parameters of a completed run.
type DatasetInfo struct {
	NSegments              int      `yaml:"n_segments"`
	CaseName               string   `yaml:"case_name"`
	Sensors                []string `yaml:"sensors"`
	SamplingFrequency      float64  `yaml:"sampling_frequency"`
	SegmentDurationMinutes int      `yaml:"segment_duration_minutes"`
	GenerationDate         string   `yaml:"generation_date"`
}

// Summary describes a generated dataset and the downstream processing steps
// expected to consume it, in execution order.
type Summary struct {
	DatasetInfo           DatasetInfo `yaml:"dataset_info"`
	FilePattern           string      `yaml:"file_pattern"`
	ExpectedWorkflowSteps []string    `yaml:"expected_workflow_steps"`
}

// newSummary builds the summary for a completed run.
func newSummary(cfg Config, sensors []string, sampleRate float64, now time.Time) *Summary {
	return &Summary{
		DatasetInfo: DatasetInfo{
			NSegments:              cfg.Segments,
			CaseName:               cfg.CaseLabel,
			Sensors:                sensors,
			SamplingFrequency:      sampleRate,
			SegmentDurationMinutes: int(cfg.SegmentDuration.Minutes()),
			GenerationDate:         now.Format(isoLayout),
		},
		FilePattern:           fmt.Sprintf("%s_segment{N}_{start}_{end}.bson", cfg.CaseLabel),
		ExpectedWorkflowSteps: workflowSteps(cfg.CaseLabel),
	}
}

// workflowSteps returns the canonical downstream pipeline invocations for a
// case, in the order they run.
func workflowSteps(caseLabel string) []string {
	return []string{
		"shmflow filter-qc --config config.yaml",
		fmt.Sprintf("shmflow process-oma --config config.yaml --case-name %s", caseLabel),
		"shmflow modal-analysis --config config.yaml --mode 6",
	}
}

// WriteFile persists the summary as YAML.
func (s *Summary) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("dataset: encode summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: write summary: %w", err)
	}

	return nil
}
