// Package recommend turns job and candidate records into numeric feature
// vectors and ranks them by Euclidean distance to a target vector.
//
// Categorical values (category, job type, location) are indexed by their
// position in a vocabulary built from the pool of the current call. Indices
// are therefore only meaningful inside a single recommendation request.
package recommend

import (
	"math"
	"strings"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
)

const (
	// FeatureCount is the width of both job and candidate feature vectors.
	FeatureCount = 5

	// PreferredEducation is the education signal a job asks of candidates.
	PreferredEducation = 5.0

	maxEducationSignal = 10.0
)

// Matrix is a pool of feature rows with the record id of each row.
type Matrix struct {
	Rows [][]float64
	IDs  []uuid.UUID
}

func (m Matrix) Len() int {
	return len(m.Rows)
}

// Vocabulary maps distinct values to their first-occurrence position.
type Vocabulary struct {
	values []string
	index  map[string]int
}

func NewVocabulary(values []string) Vocabulary {
	v := Vocabulary{index: make(map[string]int, len(values))}
	for _, s := range values {
		if _, ok := v.index[s]; ok {
			continue
		}
		v.index[s] = len(v.values)
		v.values = append(v.values, s)
	}
	return v
}

// Index returns the position of s, or 0 when s was never observed.
func (v Vocabulary) Index(s string) int {
	if i, ok := v.index[s]; ok {
		return i
	}
	return 0
}

func (v Vocabulary) Len() int {
	return len(v.values)
}

// JobVocabularies holds the categorical encodings of one job pool.
type JobVocabularies struct {
	Categories Vocabulary
	JobTypes   Vocabulary
	Locations  Vocabulary
}

func NewJobVocabularies(jobs []job.Job) JobVocabularies {
	categories := make([]string, 0, len(jobs))
	types := make([]string, 0, len(jobs))
	locations := make([]string, 0, len(jobs))
	for _, j := range jobs {
		categories = append(categories, j.Category)
		types = append(types, j.JobType)
		locations = append(locations, j.Location)
	}
	return JobVocabularies{
		Categories: NewVocabulary(categories),
		JobTypes:   NewVocabulary(types),
		Locations:  NewVocabulary(locations),
	}
}

// EncodeJobs builds [category, job type, experience, salary, location] rows.
func EncodeJobs(jobs []job.Job) (Matrix, JobVocabularies) {
	vocab := NewJobVocabularies(jobs)
	m := Matrix{
		Rows: make([][]float64, 0, len(jobs)),
		IDs:  make([]uuid.UUID, 0, len(jobs)),
	}
	for _, j := range jobs {
		m.Rows = append(m.Rows, []float64{
			float64(vocab.Categories.Index(j.Category)),
			float64(vocab.JobTypes.Index(j.JobType)),
			float64(j.ExperienceRequired),
			MidSalary(j.SalaryMin, j.SalaryMax),
			float64(vocab.Locations.Index(j.Location)),
		})
		m.IDs = append(m.IDs, j.ID)
	}
	return m, vocab
}

// MidSalary is the mean of both bounds, or 0 when either is missing or zero.
func MidSalary(lo, hi *float64) float64 {
	if lo == nil || hi == nil || *lo == 0 || *hi == 0 {
		return 0
	}
	return (*lo + *hi) / 2
}

// EncodeCandidates builds [experience, location, skills, resume, education]
// rows keyed by user id.
func EncodeCandidates(profiles []user.Profile) (Matrix, Vocabulary) {
	locations := make([]string, 0, len(profiles))
	for _, p := range profiles {
		locations = append(locations, p.Location)
	}
	vocab := NewVocabulary(locations)

	m := Matrix{
		Rows: make([][]float64, 0, len(profiles)),
		IDs:  make([]uuid.UUID, 0, len(profiles)),
	}
	for _, p := range profiles {
		m.Rows = append(m.Rows, []float64{
			float64(p.ExperienceYears),
			float64(vocab.Index(p.Location)),
			float64(SkillCount(p.Skills)),
			boolFeature(p.HasResume()),
			EducationSignal(p.Education),
		})
		m.IDs = append(m.IDs, p.UserID)
	}
	return m, vocab
}

// SkillCount counts comma separated tokens. Empty text counts as zero.
func SkillCount(skills string) int {
	if skills == "" {
		return 0
	}
	return len(strings.Split(skills, ","))
}

func EducationSignal(education string) float64 {
	return math.Min(float64(len(education))/100, maxEducationSignal)
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// JobPreferenceTarget encodes a seeker preference against a job pool.
// The salary slot carries no preference and is always 0.
func JobPreferenceTarget(vocab JobVocabularies, pref UserPreference) []float64 {
	return []float64{
		float64(vocab.Categories.Index(pref.Category)),
		float64(vocab.JobTypes.Index(pref.JobType)),
		pref.Experience,
		0,
		float64(vocab.Locations.Index(pref.Location)),
	}
}

// CandidateRequirementTarget encodes what a job asks of candidates. The
// location index is looked up in seekerLocations, the vocabulary of every
// seeker profile rather than the eligible pool.
func CandidateRequirementTarget(j job.Job, seekerLocations Vocabulary) []float64 {
	return []float64{
		float64(j.ExperienceRequired),
		float64(seekerLocations.Index(j.Location)),
		float64(SkillCount(j.SkillsRequired)),
		1,
		PreferredEducation,
	}
}
