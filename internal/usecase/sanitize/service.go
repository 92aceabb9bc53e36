package sanitize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/pkg/slug"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/geocode"
)

const archiveContentType = "application/zip"

type Options struct {
	MaxFiles         int
	Workers          int
	DefaultIntensity string
	JitterRadius     float64
	// MaxJitterRadius caps per-request radii; zero means no cap.
	MaxJitterRadius float64
	WindowDays      int
	FirstHour       int
	LastHour        int
	// Seed makes every batch reproducible when non-zero.
	Seed          uint64
	ArchivePrefix string
	URLExpiry     time.Duration
	Now           func() time.Time
}

type Service struct {
	resolver  LocationResolver
	devices   repository.DeviceRepository
	processor storage.ImageProcessor
	archiver  storage.Archiver
	archives  storage.ArchiveStorage
	opts      Options
	logger    *zap.Logger
}

// NewService wires the batch use case. archives may be nil when archive
// upload is disabled.
func NewService(
	resolver LocationResolver,
	devices repository.DeviceRepository,
	processor storage.ImageProcessor,
	archiver storage.Archiver,
	archives storage.ArchiveStorage,
	opts Options,
	logger *zap.Logger,
) *Service {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.LastHour < opts.FirstHour {
		opts.FirstHour, opts.LastHour = 7, 19
	}
	return &Service{
		resolver:  resolver,
		devices:   devices,
		processor: processor,
		archiver:  archiver,
		archives:  archives,
		opts:      opts,
		logger:    logger,
	}
}

type File struct {
	Name string
	Data []byte
}

type Input struct {
	Files    []File
	Location geocode.ResolveInput
	// DeviceID selects a catalog device. Nil or unknown ids mean random.
	DeviceID             *int
	RandomDevicePerPhoto bool
	Intensity            string
	JitterRadius         *float64
	DateFrom             string
	DateTo               string
	Keyword              string
}

type Result struct {
	Archive    []byte
	Filename   string
	Report     *entity.BatchReport
	Location   *valueobject.Location
	ArchiveURL string
}

type batchPlan struct {
	location valueobject.Location
	device   entity.DeviceChoice
	window   valueobject.DateWindow
	radius   float64
	keyword  string
	place    string
}

// Sanitize processes every file independently and archives the successes
// in input order together with a report. Only a missing location or an
// archiving failure fails the whole batch.
func (s *Service) Sanitize(ctx context.Context, input Input) (*Result, error) {
	if len(input.Files) == 0 {
		return nil, domain.ErrNoFiles
	}
	if s.opts.MaxFiles > 0 && len(input.Files) > s.opts.MaxFiles {
		return nil, fmt.Errorf("%w: %d files, limit is %d", domain.ErrTooManyFiles, len(input.Files), s.opts.MaxFiles)
	}

	location, err := s.resolver.Resolve(ctx, input.Location)
	if err != nil {
		return nil, fmt.Errorf("resolving location: %w", err)
	}

	device, err := s.deviceChoice(ctx, input)
	if err != nil {
		return nil, err
	}

	now := s.opts.Now()
	plan := batchPlan{
		location: *location,
		device:   device,
		window:   valueobject.ParseDateWindow(input.DateFrom, input.DateTo, now, s.opts.WindowDays),
		radius:   s.opts.JitterRadius,
		keyword:  strings.TrimSpace(input.Keyword),
		place:    strings.TrimSpace(input.Location.City),
	}
	if input.JitterRadius != nil {
		plan.radius = s.requestRadius(*input.JitterRadius)
	}

	intensity := strings.ToLower(strings.TrimSpace(input.Intensity))
	if intensity == "" {
		intensity = s.opts.DefaultIntensity
	}

	photos := make([]*entity.SanitizedPhoto, len(input.Files))
	failures := make([]error, len(input.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, file := range input.Files {
		g.Go(func() error {
			photos[i], failures[i] = s.processOne(gctx, i, file, intensity, plan)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := entity.NewBatchReport(len(input.Files))
	done := make([]*entity.SanitizedPhoto, 0, len(input.Files))
	for i, file := range input.Files {
		if failures[i] != nil {
			report.RecordFailure(i, file.Name, failures[i])
			s.logger.Error("failed to sanitize photo",
				zap.Int("index", i),
				zap.String("filename", file.Name),
				zap.Error(failures[i]),
			)
			continue
		}
		report.RecordSuccess()
		done = append(done, photos[i])
	}

	archive, err := s.archiver.Build(done, report)
	if err != nil {
		return nil, fmt.Errorf("building archive: %w", err)
	}

	result := &Result{
		Archive:  archive,
		Filename: fmt.Sprintf("gmb_sanitized_%s.zip", now.Format("20060102_150405")),
		Report:   report,
		Location: location,
	}

	if s.archives != nil {
		result.ArchiveURL = s.upload(ctx, result)
	}

	s.logger.Info("batch sanitized",
		zap.Int("processed", report.Processed),
		zap.Int("total", report.Total),
		zap.String("location_source", location.Source),
		zap.Int("archive_bytes", len(archive)),
	)

	return result, nil
}

func (s *Service) processOne(ctx context.Context, index int, file File, intensity string, plan batchPlan) (photo *entity.SanitizedPhoto, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			photo, err = nil, fmt.Errorf("unexpected failure: %v", rec)
		}
	}()

	r := s.newRand(index)

	out, err := s.processor.Process(ctx, storage.ProcessInput{
		Data:         file.Data,
		Intensity:    intensity,
		Location:     plan.location,
		JitterRadius: plan.radius,
		CapturedAt:   plan.window.Pick(r, s.opts.FirstHour, s.opts.LastHour),
		Device:       plan.device,
		Keyword:      plan.keyword,
		Place:        plan.place,
		Rand:         r,
	})
	if err != nil {
		return nil, err
	}

	name := OutputName(plan.keyword, plan.place, file.Name, index)
	return entity.NewSanitizedPhoto(index, name, out.Data, out.Width, out.Height, out.Quality, out.Device), nil
}

// newRand gives every image its own generator so workers never share one.
func (s *Service) newRand(index int) *rand.Rand {
	if s.opts.Seed != 0 {
		return rand.New(rand.NewPCG(s.opts.Seed, uint64(index)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// requestRadius falls back to the configured radius for values that are
// negative or not finite and caps the rest at MaxJitterRadius.
func (s *Service) requestRadius(v float64) float64 {
	if !(v >= 0) || math.IsInf(v, 1) {
		return s.opts.JitterRadius
	}
	if s.opts.MaxJitterRadius > 0 && v > s.opts.MaxJitterRadius {
		return s.opts.MaxJitterRadius
	}
	return v
}

// deviceChoice fixes one device for the batch only when per-photo
// randomisation is off and the id names a catalog entry.
func (s *Service) deviceChoice(ctx context.Context, input Input) (entity.DeviceChoice, error) {
	if input.RandomDevicePerPhoto || input.DeviceID == nil {
		return entity.RandomDevice(), nil
	}

	profile, err := s.devices.GetDevice(ctx, *input.DeviceID)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			return entity.RandomDevice(), nil
		}
		return entity.DeviceChoice{}, fmt.Errorf("loading device: %w", err)
	}
	return entity.FixedDevice(*profile), nil
}

func (s *Service) upload(ctx context.Context, result *Result) string {
	key := path.Join(s.opts.ArchivePrefix, uuid.NewString(), result.Filename)

	if err := s.archives.Upload(ctx, key, bytes.NewReader(result.Archive), archiveContentType, int64(len(result.Archive))); err != nil {
		s.logger.Warn("archive upload failed", zap.String("key", key), zap.Error(err))
		return ""
	}

	url, err := s.archives.URL(ctx, key, s.opts.URLExpiry)
	if err != nil {
		s.logger.Warn("archive url failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	return url
}

// OutputName builds "<keyword>-<city>-<n>.jpg" when a keyword is given and
// "<original>_gmb.jpg" otherwise. n is 1-based.
func OutputName(keyword, city, original string, index int) string {
	if keyword != "" {
		if city != "" {
			return fmt.Sprintf("%s-%s-%d.jpg", slug.Make(keyword), slug.Make(city), index+1)
		}
		return fmt.Sprintf("%s-%d.jpg", slug.Make(keyword), index+1)
	}

	base := path.Base(strings.ReplaceAll(original, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = fmt.Sprintf("photo_%d", index)
	}
	return base + "_gmb.jpg"
}
