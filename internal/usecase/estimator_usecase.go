package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/i18n"
	"diamond_exteriors/internal/usecase/interfaces"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrSessionNotFound    = errors.New("estimator session not found")
	ErrContactRequired    = errors.New("name, city and phone are required")
	ErrUnknownProjectType = errors.New("unknown project type")
	ErrUnknownMaterial    = errors.New("unknown material for selected project type")
	ErrInvalidTransition  = errors.New("operation not allowed at current step")
)

// complexityFactor is the fixed multiplier applied on top of area * unit cost.
const complexityFactor = 1.1

// quoteDedupWindow suppresses accidental double submissions: a new quote is
// dropped when one with the same (name, phone, estimated cost) already
// exists inside the window. A heuristic, not a uniqueness key.
const quoteDedupWindow = 60 * time.Second

// IEstimatorUseCase drives the five-step estimate wizard:
//
//	ContactInfo -> ProjectTypeSelect -> Dimensions -> MaterialSelect -> Result
//
// Each operation returns the full session state after the transition so the
// caller can render without a follow-up read.

type IEstimatorUseCase interface {
	CreateSession() entities.EstimatorSession
	GetSession(id string) (entities.EstimatorSession, error)
	SubmitContact(id string, contact entities.ContactInfo) (entities.EstimatorSession, error)
	SelectProjectType(id string, projectTypeID string) (entities.EstimatorSession, error)
	SetDimensions(id string, width, length string) (entities.EstimatorSession, error)
	AdvanceToMaterials(id string) (entities.EstimatorSession, error)
	StepBack(id string) (entities.EstimatorSession, error)
	SelectMaterial(id string, materialID string) (entities.EstimatorSession, error)
	ResetSession(id string) (entities.EstimatorSession, error)
	Summary(id string, lang string) (entities.QuoteSummary, error)
}

type EstimatorUseCase struct {
	repo interfaces.IEstimatorRepository

	mu       sync.Mutex
	sessions map[string]*entities.EstimatorSession
}

var _ IEstimatorUseCase = (*EstimatorUseCase)(nil)

func NewEstimatorUseCase(repo interfaces.IEstimatorRepository) *EstimatorUseCase {
	return &EstimatorUseCase{
		repo:     repo,
		sessions: make(map[string]*entities.EstimatorSession),
	}
}

func (u *EstimatorUseCase) CreateSession() entities.EstimatorSession {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := time.Now().UTC()
	s := &entities.EstimatorSession{
		ID:        uuid.NewString(),
		Step:      entities.StepContactInfo,
		Width:     entities.DefaultWidth,
		Length:    entities.DefaultLength,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.sessions[s.ID] = s
	return *s
}

func (u *EstimatorUseCase) GetSession(id string) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	return *s, nil
}

// SubmitContact guards the first transition: name, city and phone must be
// non-empty after trimming (neighborhood is optional). An invalid submission
// blocks the transition and leaves the session untouched.
func (u *EstimatorUseCase) SubmitContact(id string, contact entities.ContactInfo) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.Step != entities.StepContactInfo {
		return *s, ErrInvalidTransition
	}

	contact.Name = strings.TrimSpace(contact.Name)
	contact.City = strings.TrimSpace(contact.City)
	contact.Neighborhood = strings.TrimSpace(contact.Neighborhood)
	contact.Phone = strings.TrimSpace(contact.Phone)
	if contact.Name == "" || contact.City == "" || contact.Phone == "" {
		return *s, ErrContactRequired
	}

	s.Contact = contact
	s.Step = entities.StepProjectTypeSelect
	u.touch(s)
	return *s, nil
}

// SelectProjectType snapshots the chosen type and resets any previously
// chosen material and computed cost.
func (u *EstimatorUseCase) SelectProjectType(id string, projectTypeID string) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.Step != entities.StepProjectTypeSelect {
		return *s, ErrInvalidTransition
	}

	var selected *entities.ProjectType
	for _, pt := range u.repo.ProjectTypes() {
		if pt.ID == projectTypeID {
			pt := pt
			selected = &pt
			break
		}
	}
	if selected == nil {
		return *s, ErrUnknownProjectType
	}

	s.ProjectType = selected
	s.Material = nil
	s.EstimatedCost = nil
	s.Step = entities.StepDimensions
	u.touch(s)
	return *s, nil
}

// SetDimensions records the raw entered strings and invalidates a previously
// computed cost. It never changes the current step.
func (u *EstimatorUseCase) SetDimensions(id string, width, length string) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.Step != entities.StepDimensions && s.Step != entities.StepMaterialSelect {
		return *s, ErrInvalidTransition
	}

	s.Width = width
	s.Length = length
	s.EstimatedCost = nil
	u.touch(s)
	return *s, nil
}

func (u *EstimatorUseCase) AdvanceToMaterials(id string) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.Step != entities.StepDimensions {
		return *s, ErrInvalidTransition
	}

	s.Step = entities.StepMaterialSelect
	u.touch(s)
	return *s, nil
}

// StepBack walks one step backwards. Only Dimensions and MaterialSelect have
// a back transition; leaving Result requires a full reset.
func (u *EstimatorUseCase) StepBack(id string) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}

	switch s.Step {
	case entities.StepDimensions:
		s.Step = entities.StepProjectTypeSelect
	case entities.StepMaterialSelect:
		s.Step = entities.StepDimensions
	default:
		return *s, ErrInvalidTransition
	}
	u.touch(s)
	return *s, nil
}

// SelectMaterial computes the cost from the current dimensions, transitions
// to Result, and appends a quote snapshot unless the cost is undefined or a
// matching quote already sits inside the dedup window.
func (u *EstimatorUseCase) SelectMaterial(id string, materialID string) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.Step != entities.StepMaterialSelect {
		return *s, ErrInvalidTransition
	}
	if s.ProjectType == nil {
		return *s, ErrInvalidTransition
	}

	var selected *entities.Material
	for _, m := range s.ProjectType.Materials {
		if m.ID == materialID {
			m := m
			selected = &m
			break
		}
	}
	if selected == nil {
		return *s, ErrUnknownMaterial
	}

	s.Material = selected
	s.EstimatedCost = ComputeCost(s.Width, s.Length, selected.CostPerSqFt)
	s.Step = entities.StepResult
	u.touch(s)

	if s.EstimatedCost != nil {
		u.emitQuote(s)
	}
	return *s, nil
}

// ResetSession returns the wizard to its initial state: default dimensions,
// empty contact fields, no selection, no cost. The session id survives.
func (u *EstimatorUseCase) ResetSession(id string) (entities.EstimatorSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.EstimatorSession{}, err
	}

	s.Step = entities.StepContactInfo
	s.Contact = entities.ContactInfo{}
	s.ProjectType = nil
	s.Material = nil
	s.EstimatedCost = nil
	s.Width = entities.DefaultWidth
	s.Length = entities.DefaultLength
	u.touch(s)
	return *s, nil
}

// Summary projects the current snapshot into the shape the print and
// messaging handoffs consume. Static labels come from the translation
// table; persisted names stay as the admin entered them.
func (u *EstimatorUseCase) Summary(id string, lang string) (entities.QuoteSummary, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.QuoteSummary{}, err
	}
	if lang == "" || !i18n.Known(lang) {
		lang = "en"
	}

	summary := entities.QuoteSummary{
		Name:         s.Contact.Name,
		City:         s.Contact.City,
		Neighborhood: s.Contact.Neighborhood,
		Phone:        s.Contact.Phone,
		Dimensions:   s.Width + "x" + s.Length,
	}
	if s.ProjectType != nil {
		summary.ProjectTypeName = s.ProjectType.Name
	}
	if s.Material != nil {
		summary.MaterialName = s.Material.Name
	}
	if s.EstimatedCost != nil {
		summary.FormattedCost = FormatCost(*s.EstimatedCost)
	}

	t := func(key string) string { return i18n.T(lang, key, nil) }
	lines := []string{
		t("simulator.quote_title"),
		fmt.Sprintf("%s %s (%s)", t("simulator.quote_prepared_for"), summary.Name, summary.City),
		fmt.Sprintf("%s: %s", t("simulator.quote_project_type"), summary.ProjectTypeName),
		fmt.Sprintf("%s: %s ft", t("simulator.quote_dimensions"), summary.Dimensions),
		fmt.Sprintf("%s: %s", t("simulator.quote_material"), summary.MaterialName),
		fmt.Sprintf("%s $%s", t("simulator.quote_estimated_cost"), summary.FormattedCost),
		t("simulator.quote_disclaimer"),
	}
	summary.Message = strings.Join(lines, "\n")

	return summary, nil
}

// ComputeCost parses the dimension strings (unparseable values count as 0)
// and returns area * costPerSqFt * complexityFactor. A non-positive area
// yields nil: no valid cost, which is not the same as a zero cost.
func ComputeCost(width, length string, costPerSqFt float64) *float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(width), 64)
	if err != nil {
		w = 0
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(length), 64)
	if err != nil {
		l = 0
	}

	area := w * l
	if area <= 0 {
		return nil
	}
	cost := area * costPerSqFt * complexityFactor
	return &cost
}

// FormatCost renders a cost the way the result screen shows it: two decimal
// places with thousands separators, no currency symbol.
func FormatCost(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func (u *EstimatorUseCase) emitQuote(s *entities.EstimatorSession) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:              ulid.Make().String(),
		CreatedAt:       now,
		Name:            s.Contact.Name,
		City:            s.Contact.City,
		Neighborhood:    s.Contact.Neighborhood,
		Phone:           s.Contact.Phone,
		ProjectTypeID:   s.ProjectType.ID,
		ProjectTypeName: s.ProjectType.Name,
		Width:           s.Width,
		Length:          s.Length,
		MaterialID:      s.Material.ID,
		MaterialName:    s.Material.Name,
		EstimatedCost:   *s.EstimatedCost,
	}

	for _, existing := range u.repo.Quotes() {
		if existing.Name == q.Name &&
			existing.Phone == q.Phone &&
			existing.EstimatedCost == q.EstimatedCost &&
			now.Sub(existing.CreatedAt) <= quoteDedupWindow {
			return
		}
	}
	u.repo.AppendQuote(q)
}

func (u *EstimatorUseCase) session(id string) (*entities.EstimatorSession, error) {
	s, ok := u.sessions[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *EstimatorUseCase) touch(s *entities.EstimatorSession) {
	s.UpdatedAt = time.Now().UTC()
}
