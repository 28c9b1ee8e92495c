package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft is a task to be created from an import file.
type TaskDraft struct {
	Title string   `yaml:"title"`
	Steps []string `yaml:"steps"`
}

// ParseTaskDrafts parses a YAML import file. Each document holds a list of
// tasks; multiple documents separated by "---" are concatenated.
//
// Format:
//
//	- title: Clean kitchen
//	  steps:
//	    - Clear the counter
//	    - Wash the dishes
//	- title: Pay rent
func ParseTaskDrafts(content []byte) ([]TaskDraft, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}

	var drafts []TaskDraft
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var doc []TaskDraft
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse task file: %w", err)
		}
		drafts = append(drafts, doc...)
	}

	if len(drafts) == 0 {
		return nil, ErrNoTasksInFile
	}

	for i := range drafts {
		drafts[i].Title = strings.TrimSpace(drafts[i].Title)
		if drafts[i].Title == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, ErrEmptyTitle)
		}
		steps := drafts[i].Steps[:0]
		for _, s := range drafts[i].Steps {
			if s = strings.TrimSpace(s); s != "" {
				steps = append(steps, s)
			}
		}
		drafts[i].Steps = steps
	}

	return drafts, nil
}
