package efirom

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/BertoldVdb/efi-tools/efirom/capsule"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

type LogFunc func(level int, format string, param ...interface{})

type ScannerConfig struct {
	Registry          *Registry
	OldLayoutFamilies []string

	/* Board-id and raw version string of the running machine, if known */
	HostIdentifier HardwareIdentifier
	HostVersion    string

	Workers int

	LogFunc LogFunc
}

type Layout string

const (
	LayoutTable  Layout = "table"
	LayoutLegacy Layout = "legacy"
)

type Entry struct {
	Identifier      HardwareIdentifier `json:"board-id" yaml:"board-id" plist:"BoardID"`
	Model           string             `json:"model" yaml:"model" plist:"Model"`
	Version         string             `json:"version" yaml:"version" plist:"Version"`
	IsHost          bool               `json:"host" yaml:"host" plist:"Host"`
	UpdateAvailable bool               `json:"update-available" yaml:"update-available" plist:"UpdateAvailable"`
}

type Result struct {
	Name          string  `json:"name" yaml:"name" plist:"Name"`
	Size          int     `json:"size" yaml:"size" plist:"Size"`
	Version       string  `json:"version,omitempty" yaml:"version,omitempty" plist:"Version,omitempty"`
	VersionOffset int     `json:"version-offset" yaml:"version-offset" plist:"VersionOffset"`
	Layout        Layout  `json:"layout,omitempty" yaml:"layout,omitempty" plist:"Layout,omitempty"`
	Strategy      string  `json:"strategy,omitempty" yaml:"strategy,omitempty" plist:"Strategy,omitempty"`
	Anchor        int     `json:"anchor" yaml:"anchor" plist:"Anchor"`
	Entries       []Entry `json:"entries" yaml:"entries" plist:"Entries,omitempty"`
	Error         string  `json:"error,omitempty" yaml:"error,omitempty" plist:"Error,omitempty"`

	Err error `json:"-" yaml:"-" plist:"-"`
}

type Scanner struct {
	config     ScannerConfig
	registry   *Registry
	strategies []AnchorStrategy
}

func NewScanner(config ScannerConfig) *Scanner {
	s := &Scanner{
		config:   config,
		registry: config.Registry,
	}

	if s.registry == nil {
		s.registry = NewRegistry(DefaultMappings())
	}
	old := config.OldLayoutFamilies
	if old == nil {
		old = DefaultOldLayoutFamilies()
	}
	s.strategies = AnchorStrategies(old)
	if s.config.Workers <= 0 {
		s.config.Workers = runtime.NumCPU()
	}

	return s
}

func (s *Scanner) log(level int, format string, param ...interface{}) {
	if s.config.LogFunc != nil {
		s.config.LogFunc(level, format, param...)
	}
}

func (s *Scanner) fail(r *Result, err error) *Result {
	r.Err = err
	r.Error = err.Error()
	s.log(1, "%s: no data extracted: %v", r.Name, err)
	return r
}

func (s *Scanner) entry(id HardwareIdentifier, model string, version VersionRecord) Entry {
	e := Entry{
		Identifier: id,
		Model:      model,
		Version:    version.Raw,
	}

	if s.config.HostIdentifier == "" || id != s.config.HostIdentifier {
		return e
	}
	e.IsHost = true

	if s.config.HostVersion == "" {
		return e
	}
	update, err := UpdateAvailable(s.config.HostVersion, version)
	if err != nil {
		s.log(1, "Cannot compare %s with %s: %v", s.config.HostVersion, version.Raw, err)
		return e
	}
	e.UpdateAvailable = update
	return e
}

func (s *Scanner) ScanImage(img *Image) *Result {
	buf := img.Bytes()
	r := &Result{
		Name:          img.Name(),
		Size:          img.Size(),
		VersionOffset: -1,
		Anchor:        -1,
	}

	if img.Kind() == ImageKindSCAP {
		if hdr, err := capsule.Parse(buf); err != nil {
			s.log(2, "%s: capsule header: %v", r.Name, err)
		} else {
			s.log(2, "%s: capsule %s, flags %s, %s", r.Name, hdr.GUIDString(), hdr.FlagString(), humanize.Bytes(uint64(hdr.ImageSize)))
		}
	}

	version, pos, err := LocateVersion(buf, img.VersionSearchStart())
	if err != nil {
		return s.fail(r, err)
	}
	r.Version = version.Raw
	r.VersionOffset = pos
	s.log(2, "%s: version %s at 0x%x", r.Name, version.Raw, pos)

	anchor, strategy, err := LocateAnchor(s.strategies, buf, r.Name)
	r.Strategy = strategy
	if errors.Is(err, ErrorUnsupportedLayout) {
		model := DeriveModelFromToken(version.Model())
		r.Layout = LayoutLegacy
		r.Entries = []Entry{s.entry(s.registry.IdentifierFor(model), model, version)}
		s.log(2, "%s: no board-id table, model %s derived from version", r.Name, model)
		return r
	} else if err != nil {
		return s.fail(r, err)
	}

	r.Layout = LayoutTable
	r.Anchor = anchor
	ids := WalkIdentifiers(buf, anchor, TablePadded(anchor))
	s.log(2, "%s: %s anchor at 0x%x, %d board-ids", r.Name, strategy, anchor, len(ids))

	for _, id := range ids {
		r.Entries = append(r.Entries, s.entry(id, s.registry.ModelFor(id), version))
	}
	return r
}

func (s *Scanner) ScanFile(path string) (*Result, error) {
	img, err := OpenImage(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer img.Close()

	s.log(1, "Scanning %s (%s)", img.Name(), humanize.Bytes(uint64(img.Size())))
	return s.ScanImage(img), nil
}

func FindImages(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorIO, err)
	}

	var paths []string
	for _, kind := range []ImageKind{ImageKindSCAP, ImageKindFD} {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+string(kind)))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

/* Unreadable images are left out of the results and returned as one multierror */
func (s *Scanner) ScanDir(ctx context.Context, dir string) ([]*Result, error) {
	paths, err := FindImages(dir)
	if err != nil {
		return nil, err
	}
	s.log(1, "Found %d images in %s", len(paths), dir)

	results := make([]*Result, len(paths))
	var ioErrs *multierror.Error
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.config.Workers)
	for i, path := range paths {
		if egCtx.Err() != nil {
			break
		}

		i, path := i, path
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			r, err := s.ScanFile(path)
			if err != nil {
				s.log(1, "%v", err)
				mu.Lock()
				ioErrs = multierror.Append(ioErrs, err)
				mu.Unlock()
				return nil
			}
			results[i] = r
			return nil
		})
	}
	waitErr := eg.Wait()

	var out []*Result
	for _, m := range results {
		if m != nil {
			out = append(out, m)
		}
	}

	if err := ctx.Err(); err != nil {
		return out, err
	}
	if waitErr != nil {
		return out, waitErr
	}
	return out, ioErrs.ErrorOrNil()
}
