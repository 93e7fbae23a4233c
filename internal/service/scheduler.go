package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/unicostudio/b-ai-localization/internal/constants"
	"github.com/unicostudio/b-ai-localization/internal/domain"
	"github.com/unicostudio/b-ai-localization/pkg/errors"
	"go.uber.org/zap"
)

var idPrefixPattern = regexp.MustCompile(`(?i)^ID`)

// Describer produces an image description or a sentinel; it never fails.
type Describer interface {
	Describe(ctx context.Context, image []byte, filename string) string
}

// RowLocalizer turns one source text into per-language strings.
type RowLocalizer interface {
	Localize(ctx context.Context, params LocalizeParams) (map[string]string, error)
}

// NameNormalizer rewrites character names into their localized forms.
type NameNormalizer interface {
	Normalize(text, languageName string) string
}

type RunState int

const (
	RunIdle RunState = iota
	RunRunning
	RunCompleted
)

// RunOptions fixes the knobs for one run.
type RunOptions struct {
	ModelID       string
	LanguageCodes []string
	Game          string
	CustomPrompt  string

	// Progress is invoked after each completed or skipped group.
	Progress func(processed, total int)
}

// Scheduler drives image groups through describe -> localize -> normalize,
// strictly one group at a time with a rate-limit cooldown in between. Rows
// within a group run concurrently and join before the group completes.
type Scheduler struct {
	describer  Describer
	localizer  RowLocalizer
	normalizer NameNormalizer
	status     *StatusLog
	logger     *zap.Logger

	// Cooldowns are fields so tests can zero them.
	cooldownVision   time.Duration
	cooldownTextOnly time.Duration
}

func NewScheduler(describer Describer, localizer RowLocalizer, normalizer NameNormalizer, status *StatusLog, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		describer:        describer,
		localizer:        localizer,
		normalizer:       normalizer,
		status:           status,
		logger:           logger,
		cooldownVision:   constants.CooldownConfig.AfterVision,
		cooldownTextOnly: constants.CooldownConfig.AfterTextOnly,
	}
}

// Run owns the mutable state of one processing run: the group queue, the
// accumulated results and the processed counter. One Run per invocation;
// nothing run-scoped lives in process-wide state.
type Run struct {
	state          RunState
	queue          []*domain.ImageGroup
	results        []*domain.ItemResult
	processedCount int
	total          int
}

func NewRun(groups []*domain.ImageGroup) *Run {
	return &Run{
		state: RunIdle,
		queue: groups,
		total: len(groups),
	}
}

func (r *Run) State() RunState { return r.state }

// Results hands back the accumulated item list; valid after Process returns.
func (r *Run) Results() []*domain.ItemResult { return r.results }

// Process consumes the run's queue. A failing group is logged and skipped;
// only context cancellation aborts the run early.
func (s *Scheduler) Process(ctx context.Context, run *Run, images map[string][]byte, opts RunOptions) ([]*domain.ItemResult, error) {
	run.state = RunRunning
	s.status.Infof("Starting to process %d image groups with %d languages", run.total, len(opts.LanguageCodes))
	s.status.Infof("Using model: %s", opts.ModelID)

	for len(run.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return run.results, err
		}

		group := run.queue[0]
		run.queue = run.queue[1:]

		usedVision, err := s.processGroup(ctx, run, group, images, opts)
		if err != nil {
			s.status.Errorf("Error processing image %s: %v", group.ImageID, err)
			s.logger.Error("Group skipped",
				zap.String("image_id", group.ImageID),
				zap.Error(err),
			)
		}

		run.processedCount++
		if opts.Progress != nil {
			opts.Progress(run.processedCount, run.total)
		}

		if len(run.queue) > 0 {
			s.cooldown(ctx, usedVision)
		}
	}

	run.state = RunCompleted
	s.status.Successf("Processing complete!")
	return run.results, nil
}

// processGroup runs one image group to completion. The returned bool reports
// whether a vision call was made, which selects the longer cooldown.
func (s *Scheduler) processGroup(ctx context.Context, run *Run, group *domain.ImageGroup, images map[string][]byte, opts RunOptions) (usedVision bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewGroupError(fmt.Sprintf("panic while processing group: %v", r), group.ImageID, nil)
		}
	}()

	s.status.Infof("Processing group for image ID: %s", group.ImageID)

	result := domain.NewItemResult(group.ImageID + ".txt")

	filename, image := findImageByID(images, group.ImageID)
	if image != nil {
		s.status.Successf("Found matching image for ID: %s", group.ImageID)
		result.Filename = filename
		result.Description = s.describer.Describe(ctx, image, filename)
		result.OCRText = constants.OCRPlaceholder
		usedVision = true
	} else {
		s.status.Warnf("No image found for ID: %s, proceeding with text-only localization", group.ImageID)
		result.OCRText = constants.OCRPlaceholderNotFound
	}

	s.localizeRows(ctx, group, result, opts)

	if len(result.Entries) == 0 && len(group.Rows) > 0 {
		return usedVision, errors.NewGroupError("all rows in group failed", group.ImageID, nil)
	}

	run.results = append(run.results, result)
	return usedVision, nil
}

// localizeRows fires all row requests concurrently and joins them. A failed
// row is logged and omitted; it never takes the group down.
func (s *Scheduler) localizeRows(ctx context.Context, group *domain.ImageGroup, result *domain.ItemResult, opts RunOptions) {
	description := result.Description
	if description == constants.DescriptionErrorSentinel {
		// The sentinel is for output only; it adds nothing as prompt context.
		description = ""
	}

	var mu sync.Mutex
	p := pool.New().WithContext(ctx)

	for _, row := range group.Rows {
		p.Go(func(ctx context.Context) error {
			localization, err := s.localizer.Localize(ctx, LocalizeParams{
				EnglishText:      row.EnglishText,
				ModelID:          opts.ModelID,
				LanguageCodes:    opts.LanguageCodes,
				CustomPrompt:     opts.CustomPrompt,
				Game:             opts.Game,
				ImageDescription: description,
			})
			if err != nil {
				s.status.Errorf("Error processing text: %v", err)
				s.logger.Warn("Row dropped",
					zap.String("loc_id", row.LocID),
					zap.Error(err),
				)
				return nil
			}

			entry := &domain.LocalizationEntry{
				English:     row.EnglishText,
				PerLanguage: make(map[string]string, len(opts.LanguageCodes)),
			}
			for _, code := range opts.LanguageCodes {
				langName := domain.LanguageName(code)
				text, ok := localization[langName]
				if !ok || text == "" {
					entry.PerLanguage[langName] = fmt.Sprintf("[No translation available for %s]", langName)
					continue
				}
				entry.PerLanguage[langName] = s.normalizer.Normalize(text, langName)
			}

			mu.Lock()
			result.SetEntry(row.LocID, entry)
			mu.Unlock()
			return nil
		})
	}

	_ = p.Wait()

	// Entries land in completion order; re-project to input row order.
	ordered := make([]string, 0, len(result.EntryOrder))
	for _, row := range group.Rows {
		if _, ok := result.Entries[row.LocID]; ok {
			ordered = append(ordered, row.LocID)
		}
	}
	result.EntryOrder = ordered
}

func (s *Scheduler) cooldown(ctx context.Context, usedVision bool) {
	delay := s.cooldownTextOnly
	if usedVision {
		delay = s.cooldownVision
	}
	if delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

// findImageByID resolves a group's image by fuzzy numeric-ID match: the
// leading "ID" prefix is stripped case-insensitively and the remainder
// matched as a substring of uploaded filenames.
func findImageByID(images map[string][]byte, imageID string) (string, []byte) {
	idNum := idPrefixPattern.ReplaceAllString(imageID, "")
	if idNum == "" {
		return "", nil
	}

	filenames := make([]string, 0, len(images))
	for filename := range images {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	for _, filename := range filenames {
		if strings.Contains(filename, idNum) {
			return filename, images[filename]
		}
	}
	return "", nil
}
