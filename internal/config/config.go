// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// World layout. Tower spacing comes from the pointy-top hex formulas
	// scaled by HexSize * CoordScale.
	HexSize    = 12.0
	CoordScale = 4.0

	// Tower geometry. Each ring adds FloorRadiusScale to the footprint,
	// floors are FloorSpacing apart.
	FloorRadiusScale = 6.0
	FloorSpacing     = 7.0

	PodHeight = 2.4
	PodRadius = 1.2

	// Navigation tuning.
	MaxSpeedLevel      = 5
	SpeedUnitsPerLevel = 9.0 // world units per second at speed level 1
	AscendSpeed        = 5.0 // vertical units per second
	EjectionDuration   = 3.0 // seconds of parabolic flight
	EjectionPeakMargin = 5.0 // arc peak height above the tower's top floor
	FallbackLandingGap = 8.0 // landing offset past the footprint when no roads exist
	ForwardConeDeg     = 90.0

	// Camera.
	CameraSlots       = 7 // center + 6 hex faces
	CameraHeightLevel = 5 // discrete height levels 0..4
	DefaultCamSlot    = 0
	DefaultCamHeight  = 2
	DefaultCamPan     = 0
	DefaultCamTilt    = 90
	PanFineStep       = 1
	PanCoarseStep     = 15
	TiltStep          = 5

	HeadingSteps = 6 // discrete pod rotations, 60 degrees each
)

var (
	BackgroundColor = color.RGBA{12, 12, 24, 255}
	RoadColor       = color.RGBA{90, 110, 130, 255}
	TowerColor      = color.RGBA{70, 100, 160, 230}
	TowerTopColor   = color.RGBA{120, 160, 220, 255}
	BoundaryColor   = color.RGBA{60, 70, 90, 160}
	PodColor        = color.RGBA{240, 200, 60, 255}
	HUDTextColor    = color.RGBA{240, 240, 240, 255}
	HUDPanelColor   = color.RGBA{20, 20, 30, 200}
)
