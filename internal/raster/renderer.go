package raster

import (
	"image"
	"image/color"
	"time"

	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/metrics"
	"mocap-zone-configurator/internal/overlay"
	"mocap-zone-configurator/internal/postprocess"
	"mocap-zone-configurator/internal/scene"
	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/viewmatrix"
)

// Scene colors besides the brand accent.
var (
	groundColor    = color.NRGBA{R: 0x22, G: 0x22, B: 0x28, A: 0xFF}
	groundAltColor = color.NRGBA{R: 0x2a, G: 0x2a, B: 0x31, A: 0xFF}
	bodyColor      = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb8, A: 0xFF}
	deviceColor    = color.NRGBA{R: 0x55, G: 0x55, B: 0x60, A: 0xFF}
	labelColor     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

const (
	groundExtent  = 10 // meters either side of the device
	zoneFloorLift = 0.01
	zoneFloorFill = 0.12
	floorEdge     = 0.8
	upperEdge     = 0.6
	ceilingTop    = 3.2
	tripodSpread  = 0.4
)

// Options controls output size and optional assets.
type Options struct {
	Width        int
	Height       int
	Supersample  int
	FloorTexture *image.NRGBA // tiled once per meter; nil draws a checker
	Recorder     metrics.Recorder
}

// RenderFrame draws one host frame: ground, mannequin, mounts, the zone
// volume and the visible dimension annotations.
func RenderFrame(f host.Frame, opts Options) *image.NRGBA {
	start := time.Now()
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := opts.Width*ss, opts.Height*ss

	fb := NewFrameBuffer(w, h)
	fb.Fill(f.Lighting.Background)
	cam := viewmatrix.NewCamera(f.Camera, scene.FieldOfView, scene.Near, w, h)
	lc := NewLightConfig(f.Lighting)
	z := f.Snapshot.Zone

	// Opaque geometry first so transparent layers blend over it.
	drawGround(fb, &cam, &lc, opts.FloorTexture)
	drawMannequin(fb, &cam, &lc, f)
	aim := scene.Subject(z.Distance).Add(mathutil.Vec3{0, scene.MannequinSize[1] / 2, 0})
	for _, m := range f.Mounts {
		drawMount(fb, &cam, &lc, m, aim, float64(ss))
	}

	zoneFloor := Quad(
		mathutil.Vec3{-z.Width / 2, zoneFloorLift, -z.Distance - z.Length/2},
		mathutil.Vec3{z.Width / 2, zoneFloorLift, -z.Distance - z.Length/2},
		mathutil.Vec3{z.Width / 2, zoneFloorLift, -z.Distance + z.Length/2},
		mathutil.Vec3{-z.Width / 2, zoneFloorLift, -z.Distance + z.Length/2},
		mathutil.Vec3{0, 1, 0},
	)
	accent := scene.BrandColor
	drawFace(fb, &cam, &lc, zoneFloor, Paint{R: accent.R, G: accent.G, B: accent.B, Shade: 1, Opacity: zoneFloorFill})
	drawZoneEdges(fb, &cam, f, float64(ss))

	for _, a := range f.Annotations {
		if !a.Visible {
			continue
		}
		drawSegment(fb, &cam, a.From, a.To, accent, a.Opacity, 2*float64(ss))
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, opts.Width, opts.Height)
	}

	// Labels go on at output resolution so the bitmap font stays crisp.
	labelCam := viewmatrix.NewCamera(f.Camera, scene.FieldOfView, scene.Near, opts.Width, opts.Height)
	for _, a := range f.Annotations {
		drawAnnotationLabel(img, &labelCam, a)
	}

	metrics.OrNoop(opts.Recorder).ObserveFrameRender(time.Since(start))
	return img
}

func drawGround(fb *FrameBuffer, cam *viewmatrix.Camera, lc *LightConfig, tex *image.NRGBA) {
	up := mathutil.Vec3{0, 1, 0}
	shade := lc.ComputeShade(up)
	for x := -groundExtent; x < groundExtent; x++ {
		for zz := -groundExtent; zz < groundExtent; zz++ {
			fx, fz := float64(x), float64(zz)
			q := Quad(
				mathutil.Vec3{fx, 0, fz},
				mathutil.Vec3{fx + 1, 0, fz},
				mathutil.Vec3{fx + 1, 0, fz + 1},
				mathutil.Vec3{fx, 0, fz + 1},
				up,
			)
			c := groundColor
			if (x+zz)&1 != 0 {
				c = groundAltColor
			}
			drawFace(fb, cam, lc, q, Paint{Tex: tex, R: c.R, G: c.G, B: c.B, Shade: shade, Opacity: 1})
		}
	}
}

func drawMannequin(fb *FrameBuffer, cam *viewmatrix.Camera, lc *LightConfig, f host.Frame) {
	base := scene.Subject(f.Snapshot.Zone.Distance)
	size := scene.MannequinSize
	faces := Centered(base, size)
	if f.Clip == scene.ClipNone {
		// T-pose: arms straight out at shoulder height.
		shoulder := base.Add(mathutil.Vec3{0, size[1] * 0.8, 0})
		faces = append(faces, Centered(shoulder, mathutil.Vec3{size[1], 0.08, 0.08})...)
	}
	for _, face := range faces {
		drawFace(fb, cam, lc, face, Paint{
			R: bodyColor.R, G: bodyColor.G, B: bodyColor.B,
			Shade:   lc.ComputeShade(face.Normal),
			Opacity: 1,
		})
	}
}

func drawMount(fb *FrameBuffer, cam *viewmatrix.Camera, lc *LightConfig, m host.Mount, aim mathutil.Vec3, scale float64) {
	if !m.Visible {
		return
	}
	p := m.Position
	body := Box(p.Sub(mathutil.Vec3{0.05, 0.05, 0.15}), p.Add(mathutil.Vec3{0.05, 0.05, 0.15}))
	for _, face := range Transform(body, Aim(p, aim), p) {
		drawFace(fb, cam, lc, face, Paint{
			R: deviceColor.R, G: deviceColor.G, B: deviceColor.B,
			Shade:   lc.ComputeShade(face.Normal),
			Opacity: m.Opacity,
		})
	}

	switch m.Height {
	case store.Tripod:
		floor := mathutil.Vec3{p[0], 0, p[2]}
		for i := 0; i < 3; i++ {
			leg := mathutil.RotY(mathutil.Deg2Rad(float64(i) * 120)).MulVec3(mathutil.Vec3{0, 0, tripodSpread})
			drawSegment(fb, cam, p, floor.Add(leg), deviceColor, m.Opacity, 2*scale)
		}
	case store.Ceiling:
		drawSegment(fb, cam, p, mathutil.Vec3{p[0], ceilingTop, p[2]}, deviceColor, m.Opacity, 2*scale)
		drawSegment(fb, cam, mathutil.Vec3{-1.5, ceilingTop, 0}, mathutil.Vec3{1.5, ceilingTop, 0}, deviceColor, m.Opacity, 3*scale)
	}
}

func drawZoneEdges(fb *FrameBuffer, cam *viewmatrix.Camera, f host.Frame, scale float64) {
	z := f.Snapshot.Zone
	x0, x1 := -z.Width/2, z.Width/2
	zn, zf := -z.Distance+z.Length/2, -z.Distance-z.Length/2
	corners := [4][2]float64{{x0, zn}, {x1, zn}, {x1, zf}, {x0, zf}}

	accent := scene.BrandColor
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		drawSegment(fb, cam, mathutil.Vec3{a[0], zoneFloorLift, a[1]}, mathutil.Vec3{b[0], zoneFloorLift, b[1]}, accent, floorEdge, 2*scale)
		drawSegment(fb, cam, mathutil.Vec3{a[0], z.Height, a[1]}, mathutil.Vec3{b[0], z.Height, b[1]}, accent, upperEdge, scale)
		drawSegment(fb, cam, mathutil.Vec3{a[0], 0, a[1]}, mathutil.Vec3{a[0], z.Height, a[1]}, accent, upperEdge, scale)
	}
}

func drawAnnotationLabel(img *image.NRGBA, cam *viewmatrix.Camera, a overlay.Annotation) {
	if !a.Visible {
		return
	}
	x, y, _, ok := cam.Project(a.Anchor)
	if !ok {
		return
	}
	DrawLabel(img, x, y, a.Label, labelColor, a.Opacity)
}

// drawFace clips a world-space face against the near plane, projects it and
// fills it as a triangle fan.
func drawFace(fb *FrameBuffer, cam *viewmatrix.Camera, lc *LightConfig, face Face, p Paint) {
	var poly [8]clipVert
	n := 0
	for i := 0; i < 4; i++ {
		a := clipVert{pos: cam.View(face.Verts[i]), uv: face.UV[i]}
		b := clipVert{pos: cam.View(face.Verts[(i+1)%4]), uv: face.UV[(i+1)%4]}
		ina, inb := cam.InFront(a.pos), cam.InFront(b.pos)
		if ina {
			poly[n] = a
			n++
		}
		if ina != inb {
			da := -a.pos[2] - cam.Near
			db := -b.pos[2] - cam.Near
			t := da / (da - db)
			poly[n] = clipVert{
				pos: mathutil.Lerp(a.pos, b.pos, t),
				uv:  [2]float64{a.uv[0] + (b.uv[0]-a.uv[0])*t, a.uv[1] + (b.uv[1]-a.uv[1])*t},
			}
			n++
		}
	}
	if n < 3 {
		return
	}

	var verts [8]Vertex
	for i := 0; i < n; i++ {
		x, y, iz := cam.ProjectView(poly[i].pos)
		verts[i] = Vertex{X: x, Y: y, Z: iz, U: poly[i].uv[0], V: poly[i].uv[1]}
	}
	for i := 1; i+1 < n; i++ {
		RasterizeTriangle(fb, verts[0], verts[i], verts[i+1], p, lc)
	}
}

type clipVert struct {
	pos mathutil.Vec3
	uv  [2]float64
}

func drawSegment(fb *FrameBuffer, cam *viewmatrix.Camera, a, b mathutil.Vec3, c color.NRGBA, opacity, width float64) {
	va, vb, ok := cam.ClipSegment(cam.View(a), cam.View(b))
	if !ok {
		return
	}
	ax, ay, az := cam.ProjectView(va)
	bx, by, bz := cam.ProjectView(vb)
	DrawLine(fb, Vertex{X: ax, Y: ay, Z: az}, Vertex{X: bx, Y: by, Z: bz}, c, opacity, width)
}
