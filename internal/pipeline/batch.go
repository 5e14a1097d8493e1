package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Job is one persona/role build in a batch
type Job struct {
	Persona   string
	Role      string
	OutputDir string
	Data      *types.ResumeData
}

// RunAll builds every job with at most concurrency builds in flight. Jobs
// must write to distinct paths; duplicates are rejected before anything
// runs. Results are returned in job order and a failed build does not stop
// the others.
func RunAll(ctx context.Context, jobs []Job, opts RunOptions, concurrency int) ([]*Result, error) {
	if err := checkDistinctOutputs(jobs); err != nil {
		return nil, err
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*Result, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		jobOpts := opts
		jobOpts.Persona = job.Persona
		jobOpts.Role = job.Role
		jobOpts.OutputDir = job.OutputDir

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i] = failed(&Error{Message: "build cancelled", Cause: err})
				return nil
			}
			log.Printf("[BATCH] Building %s/%s", job.Persona, job.Role)
			results[i] = Run(gCtx, job.Data, jobOpts)
			if !results[i].Success {
				log.Printf("[BATCH] %s/%s failed: %s", job.Persona, job.Role, results[i].Message)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkDistinctOutputs(jobs []Job) error {
	seen := make(map[string]int, len(jobs))
	for i, job := range jobs {
		typPath, _ := rendering.ArtifactPaths(job.OutputDir, job.Persona, job.Role)
		key := filepath.Clean(typPath)
		if first, ok := seen[key]; ok {
			return &Error{Message: fmt.Sprintf("jobs %d and %d both write %s", first, i, key)}
		}
		seen[key] = i
	}
	return nil
}
