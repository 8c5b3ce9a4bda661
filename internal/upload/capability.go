package upload

import "context"

// DeviceCamera simulates the host's rear-facing camera. Available=false
// models a denied permission or a camera-less host and exercises the
// placeholder fallback end to end.
type DeviceCamera struct {
	Available bool
	FrameURI  Image
}

func (d DeviceCamera) Acquire(ctx context.Context) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !d.Available {
		return nil, ErrCameraUnavailable
	}
	uri := d.FrameURI
	if uri == "" {
		uri = "https://picsum.photos/seed/camera/800/1200"
	}
	return &deviceStream{frame: uri}, nil
}

type deviceStream struct {
	frame  Image
	closed bool
}

func (s *deviceStream) Frame() Image { return s.frame }

func (s *deviceStream) Close() error {
	s.closed = true
	return nil
}

// StubClassifier is the fixed-output stand-in for a real model. It
// reports the same label and tags for every image.
type StubClassifier struct{}

func (StubClassifier) Classify(Image) Recognition {
	return Recognition{
		Title: "Vintage 90s Denim Jacket",
		Tags:  []string{"Denim", "Outerwear", "High Demand"},
	}
}
