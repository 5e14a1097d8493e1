package pipeline

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

type fakeCompiler struct {
	mu    sync.Mutex
	calls []string
	fail  string
}

func (f *fakeCompiler) Compile(_ context.Context, markupPath, outputPath string) (bool, string) {
	f.mu.Lock()
	f.calls = append(f.calls, markupPath)
	f.mu.Unlock()

	if f.fail != "" {
		return false, "Compilation failed: " + f.fail
	}
	_ = os.WriteFile(outputPath, []byte("%PDF-1.7"), 0644)
	return true, "PDF generated: " + outputPath
}

func (f *fakeCompiler) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type unavailableCompiler struct{}

func (unavailableCompiler) Compile(ctx context.Context, in, out string) (bool, string) {
	_, err := unavailableCompiler{}.CompileTypst(ctx, in, out)
	return validation.CompileOutcome(out, err)
}

func (unavailableCompiler) CompileTypst(context.Context, string, string) (string, error) {
	return "", &validation.CompilerUnavailableError{Binary: "typst", Cause: errors.New("not found")}
}

type fakeCounter struct {
	pages int
	err   error
}

func (f fakeCounter) CountPages(string) (int, error) {
	return f.pages, f.err
}

type fakeGeometry struct {
	pages []validation.Page
	err   error
}

func (f fakeGeometry) Open(string) ([]validation.Page, error) {
	return f.pages, f.err
}

type fakeStore struct {
	mu        sync.Mutex
	created   []db.RunInput
	outcomes  []db.RunOutcome
	texts     map[string]string
	artifacts map[string]any
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{texts: map[string]string{}, artifacts: map[string]any{}}
}

func (s *fakeStore) CreateRun(_ context.Context, input db.RunInput) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	s.created = append(s.created, input)
	return uuid.New(), nil
}

func (s *fakeStore) CompleteRun(_ context.Context, _ uuid.UUID, outcome db.RunOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, outcome)
	return nil
}

func (s *fakeStore) SaveTextArtifact(_ context.Context, _ uuid.UUID, step, _, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[step] = text
	return nil
}

func (s *fakeStore) SaveArtifact(_ context.Context, _ uuid.UUID, step, _ string, content any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[step] = content
	return nil
}

func sampleData() *types.ResumeData {
	return &types.ResumeData{
		Contact: types.Contact{Name: "Jane Smith", Email: "jane@example.com"},
		Work: []types.WorkEntry{
			{Title: "Product Manager", Company: "Acme", Dates: "2019 – 2021", Bullets: []string{"Shipped #1 feature"}},
		},
	}
}
