// Package upload implements the three-step listing flow:
// capture -> recognize -> price. The camera and the classifier are
// injected capabilities, so the surrounding state machine never changes
// when a real device or a real model shows up.
package upload

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"pickl/internal/domain"
)

// Image addresses a renderable image by URI. The flow never fetches or
// validates it; rendering is someone else's problem.
type Image string

// PlaceholderImage stands in for a capture when no camera is available.
const PlaceholderImage Image = "https://picsum.photos/seed/drip/800/600"

// Pricing step constants. The slider posts a value inside the range,
// but the listed product always carries the suggested price.
const (
	SuggestedPrice = 85.0
	PriceFloor     = 70.0
	PriceCeil      = 90.0
)

// ErrCameraUnavailable reports a denied or missing device. The flow
// recovers locally with PlaceholderImage; it is never a user-facing
// failure.
var ErrCameraUnavailable = errors.New("upload: camera unavailable")

var errNoFlow = errors.New("upload: no active flow")

// Stream is a live camera feed. Close releases the device and runs no
// matter how the flow exits.
type Stream interface {
	Frame() Image
	Close() error
}

// Camera acquires the rear-facing feed. It is asked exactly once per
// entry into the capture step.
type Camera interface {
	Acquire(ctx context.Context) (Stream, error)
}

type Recognition struct {
	Title string
	Tags  []string
}

// Classifier maps a captured image to a title and tags. Any function
// with this shape can replace the stub.
type Classifier interface {
	Classify(img Image) Recognition
}

type Step int

const (
	StepCapture Step = iota + 1
	StepRecognize
	StepPrice
)

// Flow is one session's progress through the pipeline.
type Flow struct {
	Step        Step
	CameraOK    bool
	Image       Image
	Recognition Recognition
	Slider      float64

	stream Stream
}

// Pipeline holds the per-session flows.
type Pipeline struct {
	Camera   Camera
	Classify Classifier

	mu    sync.Mutex
	flows map[string]*Flow
}

func NewPipeline(cam Camera, cls Classifier) *Pipeline {
	return &Pipeline{Camera: cam, Classify: cls, flows: make(map[string]*Flow)}
}

// Begin starts (or restarts) the flow at the capture step and acquires
// the camera. Acquisition failure is absorbed: the flow continues on
// the placeholder image.
func (p *Pipeline) Begin(ctx context.Context, sid string) *Flow {
	p.mu.Lock()
	defer p.mu.Unlock()
	if old, ok := p.flows[sid]; ok {
		releaseStream(old)
	}
	f := &Flow{Step: StepCapture, Slider: SuggestedPrice}
	if stream, err := p.Camera.Acquire(ctx); err == nil {
		f.CameraOK = true
		f.stream = stream
	}
	p.flows[sid] = f
	return f
}

// State returns the session's flow, if one is active.
func (p *Pipeline) State(sid string) (Flow, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.flows[sid]
	if !ok {
		return Flow{}, false
	}
	return *f, true
}

// Capture snapshots the current frame (or the placeholder when no
// camera was acquired), releases the device, and moves to recognition.
func (p *Pipeline) Capture(sid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.flows[sid]
	if !ok || f.Step != StepCapture {
		return errNoFlow
	}
	if f.stream != nil {
		f.Image = f.stream.Frame()
	} else {
		f.Image = PlaceholderImage
	}
	releaseStream(f)
	f.Recognition = p.Classify.Classify(f.Image)
	f.Step = StepRecognize
	return nil
}

// Confirm accepts the recognition result and moves to pricing.
func (p *Pipeline) Confirm(sid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.flows[sid]
	if !ok || f.Step != StepRecognize {
		return errNoFlow
	}
	f.Step = StepPrice
	return nil
}

// SetSlider records the slider position. The value is display state
// only; Complete deliberately ignores it.
func (p *Pipeline) SetSlider(sid string, v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if f, ok := p.flows[sid]; ok && f.Step == StepPrice {
		f.Slider = v
	}
}

// Back steps the flow backwards, discarding the capture when leaving
// recognition. Returning to the capture step re-acquires the camera.
// At the capture step there is nothing to step back to; the caller
// exits to the feed (and must call Abandon).
func (p *Pipeline) Back(ctx context.Context, sid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.flows[sid]
	if !ok {
		return errNoFlow
	}
	switch f.Step {
	case StepPrice:
		f.Step = StepRecognize
	case StepRecognize:
		f.Image = ""
		f.Recognition = Recognition{}
		f.Step = StepCapture
		f.CameraOK = false
		if stream, err := p.Camera.Acquire(ctx); err == nil {
			f.CameraOK = true
			f.stream = stream
		}
	default:
		return errNoFlow
	}
	return nil
}

// Complete ("List It") synthesizes the new listing from the captured
// image and the simulated recognition, ends the flow, and hands the
// product back for the catalog commit.
func (p *Pipeline) Complete(sid string) (domain.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.flows[sid]
	if !ok || f.Step != StepPrice || f.Image == "" {
		return domain.Product{}, errNoFlow
	}
	releaseStream(f)
	delete(p.flows, sid)
	return domain.Product{
		ID:        uuid.NewString(),
		Title:     f.Recognition.Title,
		Brand:     "Levis",
		Size:      "M",
		Price:     SuggestedPrice,
		Image:     string(f.Image),
		Category:  "Outerwear",
		Condition: "Vintage",
	}, nil
}

// Abandon ends the flow and releases the camera, whatever step it was
// on. Safe to call for sessions with no flow.
func (p *Pipeline) Abandon(sid string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if f, ok := p.flows[sid]; ok {
		releaseStream(f)
		delete(p.flows, sid)
	}
}

func releaseStream(f *Flow) {
	if f.stream != nil {
		_ = f.stream.Close()
		f.stream = nil
	}
}
