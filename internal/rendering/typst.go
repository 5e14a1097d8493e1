package rendering

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTemplate is used when no template is requested
const DefaultTemplate = "modern"

// AvailableTemplates lists the resume templates that Generate accepts
var AvailableTemplates = []string{"modern"}

const (
	// resume and letter sources live at different depths below the project root
	resumeImportPrefix = "../../typst/templates/"
	letterImportPath   = "../../../typst/templates/letter.typ"
)

// RecipientField is one line of a cover letter's recipient block
type RecipientField struct {
	Key   string
	Value string
}

// Generate serializes resume data into a Typst document for the given
// template. Output is byte-identical for identical input. When outputPath is
// not empty the document is also written there atomically.
func Generate(data *types.ResumeData, template string, outputPath string) (string, error) {
	if !slices.Contains(AvailableTemplates, template) {
		return "", &UnknownTemplateError{
			Template:  template,
			Available: slices.Clone(AvailableTemplates),
		}
	}
	if data == nil {
		return "", &RenderError{Message: "resume data is nil"}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("// Generated Resume - %s Template\n", templateTitle(template)))
	sb.WriteString("// Edit personal information in the data dictionary below\n\n")
	sb.WriteString(fmt.Sprintf("#import %q: render\n\n", resumeImportPrefix+template+".typ"))
	sb.WriteString("#let data = ")
	sb.WriteString(Print(resumeValue(data), 0))
	sb.WriteString("\n\n#render(data)\n")

	content := sb.String()
	if outputPath != "" {
		if err := WriteFileAtomic(outputPath, []byte(content)); err != nil {
			return "", err
		}
	}
	return content, nil
}

// GenerateLetter serializes a cover letter: the resume's contact block, an
// optional recipient block and the letter body. A nil or empty recipient is
// rendered as none.
func GenerateLetter(data *types.ResumeData, body string, recipient []RecipientField, outputPath string) (string, error) {
	if data == nil {
		return "", &RenderError{Message: "resume data is nil"}
	}

	var recipientValue Value = None{}
	if len(recipient) > 0 {
		dict := make(Dict, 0, len(recipient))
		for _, f := range recipient {
			dict = append(dict, Field{Key: f.Key, Value: Str(f.Value)})
		}
		recipientValue = dict
	}

	letter := Record{
		{Key: "contact", Value: contactValue(data.Contact)},
		{Key: "date", Value: None{}},
		{Key: "recipient", Value: recipientValue},
		{Key: "body", Value: Str(body)},
	}

	var sb strings.Builder
	sb.WriteString("// Generated Cover Letter\n")
	sb.WriteString(fmt.Sprintf("#import %q: render\n\n", letterImportPath))
	sb.WriteString("#let data = ")
	sb.WriteString(Print(letter, 0))
	sb.WriteString("\n\n#render(data)\n")

	content := sb.String()
	if outputPath != "" {
		if err := WriteFileAtomic(outputPath, []byte(content)); err != nil {
			return "", err
		}
	}
	return content, nil
}

// ArtifactPaths returns the markup and PDF paths for a persona/role build:
// {persona}_{role}_master_resume.typ and .pdf inside dir.
func ArtifactPaths(dir, persona, role string) (typPath, pdfPath string) {
	base := filepath.Join(dir, fmt.Sprintf("%s_%s_master_resume", persona, role))
	return base + ".typ", base + ".pdf"
}

func templateTitle(template string) string {
	return cases.Title(language.English).String(template)
}

func resumeValue(data *types.ResumeData) Record {
	return Record{
		{Key: "contact", Value: contactValue(data.Contact)},
		{Key: "summary", Value: OptionalStr(data.Summary)},
		{Key: "work", Value: workValue(data.Work)},
		{Key: "projects", Value: projectsValue(data.Projects)},
		{Key: "education", Value: educationValue(data.Education)},
		{Key: "skills", Value: skillsValue(data.Skills)},
	}
}

// contactValue omits optional fields that are absent or empty; the templates
// test for key presence in the contact block.
func contactValue(c types.Contact) Record {
	rec := Record{
		{Key: "name", Value: Str(c.Name)},
		{Key: "email", Value: Str(c.Email)},
	}
	addIfSet := func(key string, value *string) {
		if value != nil && *value != "" {
			rec = append(rec, Field{Key: key, Value: Str(*value)})
		}
	}
	addIfSet("preferred_name", c.PreferredName)
	addIfSet("phone", &c.Phone)
	addIfSet("location", &c.Location)
	addIfSet("linkedin", c.LinkedIn)
	addIfSet("website", c.Website)
	return rec
}

func workValue(work []types.WorkEntry) Seq {
	seq := make(Seq, 0, len(work))
	for _, job := range work {
		seq = append(seq, Record{
			{Key: "title", Value: Str(job.Title)},
			{Key: "company", Value: Str(job.Company)},
			{Key: "url", Value: OptionalStr(job.URL)},
			{Key: "description", Value: OptionalStr(job.Description)},
			{Key: "dates", Value: Str(job.Dates)},
			{Key: "bullets", Value: StrSeq(job.Bullets)},
		})
	}
	return seq
}

func projectsValue(projects []types.ProjectEntry) Seq {
	seq := make(Seq, 0, len(projects))
	for _, proj := range projects {
		seq = append(seq, Record{
			{Key: "title", Value: Str(proj.Title)},
			{Key: "url", Value: OptionalStr(proj.URL)},
			{Key: "description", Value: OptionalStr(proj.Description)},
			{Key: "dates", Value: Str(proj.Dates)},
			{Key: "bullets", Value: StrSeq(proj.Bullets)},
		})
	}
	return seq
}

func educationValue(education []types.EducationEntry) Seq {
	seq := make(Seq, 0, len(education))
	for _, edu := range education {
		seq = append(seq, Record{
			{Key: "degree", Value: Str(edu.Degree)},
			{Key: "institution", Value: Str(edu.Institution)},
			{Key: "url", Value: OptionalStr(edu.URL)},
			{Key: "dates", Value: Str(edu.Dates)},
			{Key: "bullets", Value: StrSeq(edu.Bullets)},
		})
	}
	return seq
}

func skillsValue(skills types.SkillSet) Dict {
	dict := make(Dict, 0, len(skills))
	for _, category := range skills {
		dict = append(dict, Field{Key: category.Name, Value: StrSeq(category.Skills)})
	}
	return dict
}
