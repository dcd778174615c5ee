// Package legacy owns the booth's residents, prompts and recordings for the
// lifetime of the process. Every mutation replaces the affected collection
// and writes it back through the repository adapter; storage problems are
// logged there and never surface here.
package legacy

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/pkg/idgen"
	"legacy-booth/internal/repository"
	"legacy-booth/internal/seed"
)

type Service interface {
	AddResident(ctx context.Context, input domain.CreateResidentInput) domain.Resident
	GetResidentByID(id string) (domain.Resident, bool)
	AddRecording(ctx context.Context, input domain.CreateRecordingInput) domain.Recording
	UpdateRecording(ctx context.Context, updated domain.Recording) bool
	ModifyRecording(ctx context.Context, id string, modify func(domain.Recording) domain.Recording) (domain.Recording, bool)
	AddPrompt(ctx context.Context, input domain.CreatePromptInput) domain.Prompt

	Residents() []domain.Resident
	Prompts() []domain.Prompt
	PromptCategories() []string
	Recordings() []domain.Recording
	GetRecordingByID(id string) (domain.Recording, bool)
	ListRecordings(filter domain.RecordingFilter, params domain.PaginationParams) domain.PaginatedResponse[domain.Recording]
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithIDGenerator(ids *idgen.Generator) Option {
	return func(s *service) { s.ids = ids }
}

type service struct {
	adapter *repository.Adapter
	logger  *zap.Logger
	now     func() time.Time
	ids     *idgen.Generator

	seedResidents []domain.Resident

	residentsMu sync.RWMutex
	residents   []domain.Resident

	promptsMu sync.RWMutex
	prompts   []domain.Prompt

	recordingsMu sync.RWMutex
	recordings   []domain.Recording
}

func NewService(ctx context.Context, adapter *repository.Adapter, seedData seed.Data, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		adapter:       adapter,
		logger:        logger,
		now:           time.Now,
		seedResidents: slices.Clone(seedData.Residents),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = idgen.New(s.now)
	}

	s.residents = slices.Clone(repository.Load(ctx, adapter, repository.ResidentsKey, seedData.Residents))
	s.prompts = slices.Clone(repository.Load(ctx, adapter, repository.PromptsKey, seedData.Prompts))
	s.recordings = slices.Clone(repository.Load(ctx, adapter, repository.RecordingsKey, seedData.Recordings))

	for _, r := range s.residents {
		s.ids.Observe(r.ID)
	}
	for _, p := range s.prompts {
		s.ids.Observe(p.ID)
	}
	for _, r := range s.recordings {
		s.ids.Observe(r.ID)
	}

	logger.Info("legacy data loaded",
		zap.Int("residents", len(s.residents)),
		zap.Int("prompts", len(s.prompts)),
		zap.Int("recordings", len(s.recordings)),
	)

	return s
}

func (s *service) AddResident(ctx context.Context, input domain.CreateResidentInput) domain.Resident {
	resident := domain.Resident{
		ID:                 s.ids.Next(idgen.ResidentPrefix),
		Name:               input.Name,
		Photo:              input.Photo,
		Email:              input.Email,
		IsStaff:            false,
		FamilyContactName:  input.FamilyContactName,
		FamilyContactEmail: input.FamilyContactEmail,
		FamilyContactPhone: input.FamilyContactPhone,
	}

	s.residentsMu.Lock()
	defer s.residentsMu.Unlock()

	s.residents = prepend(s.residents, resident)
	repository.Save(ctx, s.adapter, repository.ResidentsKey, s.residents)

	s.logger.Info("resident added", zap.String("resident_id", resident.ID))
	return resident
}

// GetResidentByID also resolves seed residents, so the sample profiles stay
// reachable even after the stored collection was replaced.
func (s *service) GetResidentByID(id string) (domain.Resident, bool) {
	s.residentsMu.RLock()
	for _, r := range s.residents {
		if r.ID == id {
			s.residentsMu.RUnlock()
			return r, true
		}
	}
	s.residentsMu.RUnlock()

	for _, r := range s.seedResidents {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Resident{}, false
}

func (s *service) AddRecording(ctx context.Context, input domain.CreateRecordingInput) domain.Recording {
	status := input.Status
	if status == "" {
		status = domain.TranscriptionPending
	}

	recording := domain.Recording{
		ID:            s.ids.Next(idgen.RecordingPrefix),
		Timestamp:     s.now().UTC(),
		ResidentID:    input.ResidentID,
		Type:          input.Type,
		Prompt:        input.Prompt,
		Video:         input.Video,
		Status:        status,
		Transcription: input.Transcription,
		AISummary:     "",
		StaffNotes:    input.StaffNotes,
	}

	s.recordingsMu.Lock()
	defer s.recordingsMu.Unlock()

	s.recordings = prepend(s.recordings, recording)
	repository.Save(ctx, s.adapter, repository.RecordingsKey, s.recordings)

	s.logger.Info("recording added",
		zap.String("recording_id", recording.ID),
		zap.String("resident_id", recording.ResidentID),
		zap.String("type", string(recording.Type)),
	)
	return recording
}

// UpdateRecording replaces the recording with the same id. It reports false,
// and changes nothing, when no recording has that id.
func (s *service) UpdateRecording(ctx context.Context, updated domain.Recording) bool {
	s.recordingsMu.Lock()
	defer s.recordingsMu.Unlock()

	idx := slices.IndexFunc(s.recordings, func(r domain.Recording) bool { return r.ID == updated.ID })
	if idx < 0 {
		s.logger.Debug("update for unknown recording dropped", zap.String("recording_id", updated.ID))
		return false
	}

	next := slices.Clone(s.recordings)
	next[idx] = updated
	s.recordings = next
	repository.Save(ctx, s.adapter, repository.RecordingsKey, s.recordings)

	s.logger.Info("recording updated",
		zap.String("recording_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)
	return true
}

// ModifyRecording applies modify to the current recording with id and saves
// the result under the collection lock, so concurrent edits never overwrite
// each other. The id is kept whatever modify returns.
func (s *service) ModifyRecording(ctx context.Context, id string, modify func(domain.Recording) domain.Recording) (domain.Recording, bool) {
	s.recordingsMu.Lock()
	defer s.recordingsMu.Unlock()

	idx := slices.IndexFunc(s.recordings, func(r domain.Recording) bool { return r.ID == id })
	if idx < 0 {
		return domain.Recording{}, false
	}

	updated := modify(s.recordings[idx])
	updated.ID = id

	next := slices.Clone(s.recordings)
	next[idx] = updated
	s.recordings = next
	repository.Save(ctx, s.adapter, repository.RecordingsKey, s.recordings)

	s.logger.Info("recording modified",
		zap.String("recording_id", id),
		zap.String("status", string(updated.Status)),
	)
	return updated, true
}

func (s *service) AddPrompt(ctx context.Context, input domain.CreatePromptInput) domain.Prompt {
	prompt := domain.Prompt{
		ID:       s.ids.Next(idgen.PromptPrefix),
		Category: input.Category,
		Question: input.Question,
	}

	s.promptsMu.Lock()
	defer s.promptsMu.Unlock()

	s.prompts = prepend(s.prompts, prompt)
	repository.Save(ctx, s.adapter, repository.PromptsKey, s.prompts)

	s.logger.Info("prompt added", zap.String("prompt_id", prompt.ID))
	return prompt
}

func (s *service) Residents() []domain.Resident {
	s.residentsMu.RLock()
	defer s.residentsMu.RUnlock()
	return slices.Clone(s.residents)
}

func (s *service) Prompts() []domain.Prompt {
	s.promptsMu.RLock()
	defer s.promptsMu.RUnlock()
	return slices.Clone(s.prompts)
}

// PromptCategories lists distinct non-empty categories in collection order.
func (s *service) PromptCategories() []string {
	s.promptsMu.RLock()
	defer s.promptsMu.RUnlock()

	categories := []string{}
	seen := make(map[string]bool)
	for _, p := range s.prompts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

func (s *service) Recordings() []domain.Recording {
	s.recordingsMu.RLock()
	defer s.recordingsMu.RUnlock()
	return slices.Clone(s.recordings)
}

func (s *service) GetRecordingByID(id string) (domain.Recording, bool) {
	s.recordingsMu.RLock()
	defer s.recordingsMu.RUnlock()

	for _, r := range s.recordings {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recording{}, false
}

func (s *service) ListRecordings(filter domain.RecordingFilter, params domain.PaginationParams) domain.PaginatedResponse[domain.Recording] {
	s.recordingsMu.RLock()
	matched := []domain.Recording{}
	for _, r := range s.recordings {
		if filter.Matches(r) {
			matched = append(matched, r)
		}
	}
	s.recordingsMu.RUnlock()

	return domain.Paginate(matched, params)
}

func prepend[T any](items []T, item T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, item)
	return append(next, items...)
}
