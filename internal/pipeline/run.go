package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// Step names reported through ProgressCallback
const (
	StepValidate  = "validate"
	StepRender    = "render"
	StepCompile   = "compile"
	StepPageCount = "page_count"
	StepQuality   = "quality"
)

// ProgressEvent represents a progress update during a build
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Persona string `json:"persona"`
	Role    string `json:"role"`
}

// ProgressCallback is called when a build step finishes
type ProgressCallback func(event ProgressEvent)

// Store records builds. *db.DB satisfies it.
type Store interface {
	CreateRun(ctx context.Context, input db.RunInput) (uuid.UUID, error)
	CompleteRun(ctx context.Context, runID uuid.UUID, outcome db.RunOutcome) error
	SaveTextArtifact(ctx context.Context, runID uuid.UUID, step, category, text string) error
	SaveArtifact(ctx context.Context, runID uuid.UUID, step, category string, content any) error
}

// RunOptions holds configuration for a single build
type RunOptions struct {
	OutputDir string
	Persona   string
	Role      string
	Template  string // empty means rendering.DefaultTemplate

	Compiler validation.Compiler
	Counter  validation.PageCounter
	Geometry validation.GeometryProvider // required when CheckQuality is set

	CheckQuality  bool
	RuntThreshold int // zero means validation.DefaultRuntThreshold

	Store      Store // optional build history
	OnProgress ProgressCallback
}

// Result is the outcome of a build. Success is true only when the document
// compiled and fits on one page; quality findings never affect it.
type Result struct {
	Success    bool
	Message    string
	MarkupPath string
	OutputPath string
	Pages      int
	Quality    *types.QualityReport
	Err        error
}

// Run builds one resume. Invalid data and unknown templates are reported
// before any file is written or the compiler runs.
func Run(ctx context.Context, data *types.ResumeData, opts RunOptions) *Result {
	template := opts.Template
	if template == "" {
		template = rendering.DefaultTemplate
	}

	if err := checkOptions(opts); err != nil {
		return failed(err)
	}

	if data == nil {
		return failed(&types.SchemaError{Violations: []types.FieldViolation{{Field: "resume", Message: "is required"}}})
	}
	if err := data.Validate(); err != nil {
		return failed(err)
	}
	content, err := rendering.Generate(data, template, "")
	if err != nil {
		return failed(err)
	}
	emit(opts, StepValidate, "resume data is valid")

	rec := startRecording(ctx, opts, template)

	result := build(ctx, content, opts)
	rec.finish(ctx, content, result)
	return result
}

func checkOptions(opts RunOptions) error {
	switch {
	case opts.Persona == "" || opts.Role == "":
		return &Error{Message: "persona and role are required"}
	case opts.OutputDir == "":
		return &Error{Message: "output directory is required"}
	case opts.Compiler == nil:
		return &Error{Message: "compiler is required"}
	case opts.Counter == nil:
		return &Error{Message: "page counter is required"}
	case opts.CheckQuality && opts.Geometry == nil:
		return &Error{Message: "geometry provider is required for quality checks"}
	}
	return nil
}

func build(ctx context.Context, content string, opts RunOptions) *Result {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return failed(&Error{Message: fmt.Sprintf("failed to create output directory %s", opts.OutputDir), Cause: err})
	}

	typPath, pdfPath := rendering.ArtifactPaths(opts.OutputDir, opts.Persona, opts.Role)
	if err := rendering.WriteFileAtomic(typPath, []byte(content)); err != nil {
		return failed(err)
	}
	emit(opts, StepRender, fmt.Sprintf("wrote %s", typPath))

	result := &Result{MarkupPath: typPath, OutputPath: pdfPath}

	ok, message, err := compile(ctx, opts.Compiler, typPath, pdfPath)
	result.Message = message
	if !ok {
		result.Err = err
		return result
	}
	emit(opts, StepCompile, message)

	pages, err := opts.Counter.CountPages(pdfPath)
	if err != nil {
		result.Message = fmt.Sprintf("Could not count pages: %v", err)
		result.Err = err
		return result
	}
	result.Pages = pages
	emit(opts, StepPageCount, fmt.Sprintf("%d page(s)", pages))

	if pages > validation.MaxPages {
		result.Message = fmt.Sprintf("Resume is %d pages. One-page limit exceeded.", pages)
		result.Err = &validation.PageLimitExceededError{Pages: pages, Limit: validation.MaxPages, Path: pdfPath}
	} else {
		result.Success = true
	}

	if opts.CheckQuality {
		report, err := validation.AnalyzeQuality(opts.Geometry, pdfPath, opts.RuntThreshold)
		if err != nil {
			log.Printf("[PIPELINE] Quality analysis skipped for %s: %v", pdfPath, err)
		} else {
			result.Quality = report
			emit(opts, StepQuality, fmt.Sprintf("%d runt(s), %.1f%% filled", len(report.Runts), report.Fill.FillPercent))
		}
	}

	return result
}

// compile prefers typed errors when the compiler offers them
func compile(ctx context.Context, compiler validation.Compiler, typPath, pdfPath string) (bool, string, error) {
	if typed, ok := compiler.(validation.ErrorCompiler); ok {
		_, err := typed.CompileTypst(ctx, typPath, pdfPath)
		success, message := validation.CompileOutcome(pdfPath, err)
		return success, message, err
	}

	ok, message := compiler.Compile(ctx, typPath, pdfPath)
	if ok {
		return true, message, nil
	}
	return false, message, &validation.CompilationError{Message: message}
}

func failed(err error) *Result {
	return &Result{Success: false, Message: err.Error(), Err: err}
}

func emit(opts RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, Persona: opts.Persona, Role: opts.Role})
	}
}

// recorder writes build history; every failure is logged and ignored
type recorder struct {
	store Store
	runID uuid.UUID
}

func startRecording(ctx context.Context, opts RunOptions, template string) *recorder {
	if opts.Store == nil {
		return &recorder{}
	}
	runID, err := opts.Store.CreateRun(ctx, db.RunInput{Persona: opts.Persona, Role: opts.Role, Template: template})
	if err != nil {
		log.Printf("[PIPELINE] Failed to record run for %s/%s: %v", opts.Persona, opts.Role, err)
		return &recorder{}
	}
	return &recorder{store: opts.Store, runID: runID}
}

func (r *recorder) finish(ctx context.Context, content string, result *Result) {
	if r.store == nil {
		return
	}

	if err := r.store.SaveTextArtifact(ctx, r.runID, db.StepMarkup, db.CategoryMarkup, content); err != nil {
		log.Printf("[PIPELINE] Failed to save markup for run %s: %v", r.runID, err)
	}
	if result.Quality != nil {
		if err := r.store.SaveArtifact(ctx, r.runID, db.StepQualityReport, db.CategoryQuality, result.Quality); err != nil {
			log.Printf("[PIPELINE] Failed to save quality report for run %s: %v", r.runID, err)
		}
	}

	if err := r.store.CompleteRun(ctx, r.runID, outcome(result)); err != nil {
		log.Printf("[PIPELINE] Failed to complete run %s: %v", r.runID, err)
	}
}

func outcome(result *Result) db.RunOutcome {
	status := db.StatusFailed
	var limitErr *validation.PageLimitExceededError
	switch {
	case result.Success:
		status = db.StatusSucceeded
	case errors.As(result.Err, &limitErr):
		status = db.StatusRejected
	}
	return db.RunOutcome{
		Status:     status,
		Pages:      result.Pages,
		Message:    result.Message,
		OutputPath: result.OutputPath,
	}
}
