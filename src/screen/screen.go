package screen

import (
	"log"
	"math"
)

// FallbackSize is used whenever no monitor can be queried.
var FallbackSize = Size{Width: 1920, Height: 1080}

// Monitor is a display as reported by the host platform, in physical pixels.
type Monitor struct {
	WidthPx     int
	HeightPx    int
	ScaleFactor float64
}

// Size is a width/height pair in logical (DPI-independent) units.
type Size struct {
	Width  float64
	Height float64
}

// Scale returns the monitor's scale factor, substituting 1.0 when the host
// reported nothing usable.
func (m Monitor) Scale() float64 {
	if m.ScaleFactor <= 0 || math.IsNaN(m.ScaleFactor) || math.IsInf(m.ScaleFactor, 0) {
		return 1.0
	}
	return m.ScaleFactor
}

// LogicalSize converts the physical size into logical units.
func (m Monitor) LogicalSize() Size {
	s := m.Scale()
	return Size{Width: float64(m.WidthPx) / s, Height: float64(m.HeightPx) / s}
}

// MonitorSource looks up the monitor the overlay window is on (or the primary
// one when that is ambiguous). ok is false when there is no monitor.
type MonitorSource interface {
	Current() (m Monitor, ok bool, err error)
}

// Service resolves screen geometry. Monitors are queried on every call because
// the display configuration may change between calls.
type Service struct {
	source MonitorSource
}

func NewService(source MonitorSource) *Service {
	return &Service{source: source}
}

// ResolveLogicalSize returns the current monitor's logical size. It never
// fails: any query error, or a missing monitor, yields FallbackSize.
func (s *Service) ResolveLogicalSize() Size {
	if s == nil || s.source == nil {
		return FallbackSize
	}
	m, ok, err := s.source.Current()
	if err != nil {
		log.Printf("screen: monitor query failed, using %vx%v: %v", FallbackSize.Width, FallbackSize.Height, err)
		return FallbackSize
	}
	if !ok || m.WidthPx <= 0 || m.HeightPx <= 0 {
		log.Printf("screen: no monitor found, using %vx%v", FallbackSize.Width, FallbackSize.Height)
		return FallbackSize
	}
	return m.LogicalSize()
}
