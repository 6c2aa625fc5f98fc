package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/reelkeys/internal/logging"
	"github.com/dshills/reelkeys/internal/player"
)

// Service captures frames from a player.
type Service struct {
	player     player.Player
	downloader Downloader
	logger     *logging.Logger

	wg        sync.WaitGroup
	completed atomic.Uint64
	failed    atomic.Uint64
}

// New creates a capture service. logger may be nil.
func New(p player.Player, d Downloader, logger *logging.Logger) *Service {
	return &Service{
		player:     p,
		downloader: d,
		logger:     logging.OrDiscard(logger).WithComponent("capture"),
	}
}

// Capture snapshots the current frame and starts encoding it. It returns
// an error only when the snapshot itself fails, in which case no notice is
// shown. Encoding and delivery errors are logged.
func (s *Service) Capture() error {
	v := s.player.Video()

	img, err := snapshot(v)
	if err != nil {
		s.failed.Add(1)
		return err
	}

	t := v.CurrentTime()
	ts, name := Timestamp(t), Filename(t)
	log := s.logger.WithFields(map[string]any{"id": uuid.NewString(), "file": name})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.encode(name, img); err != nil {
			s.failed.Add(1)
			log.Error("capture failed: %v", err)
			return
		}
		s.completed.Add(1)
		log.Debug("capture written")
	}()

	s.player.Notice("Screenshot " + ts)
	return nil
}

func (s *Service) encode(name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if s.downloader == nil {
		return nil
	}
	return s.downloader.Download(name, buf.Bytes())
}

// Wait blocks until every started capture has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Stats returns the number of captures delivered and failed so far.
func (s *Service) Stats() (completed, failed uint64) {
	return s.completed.Load(), s.failed.Load()
}

// snapshot copies the current frame into an RGBA raster of the video's
// native size so encoding can proceed while playback continues.
func snapshot(v player.Video) (*image.RGBA, error) {
	w, h := v.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrNoFrame, w, h)
	}
	frame, err := v.Frame()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFrame, err)
	}
	if frame == nil {
		return nil, ErrNoFrame
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), frame, frame.Bounds().Min, draw.Src)
	return dst, nil
}
