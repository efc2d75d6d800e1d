package runner

import (
	"math"

	"github.com/vovakirdan/rapid-runner/internal/core"
)

// PoseName identifies an animation in the pose table.
type PoseName string

const (
	PoseRun         PoseName = "run"
	PoseJumpAscend  PoseName = "jump_ascend"
	PoseJumpDescend PoseName = "jump_descend"
	PoseDash        PoseName = "dash"
)

// RunFrames is the length of the running cycle.
const RunFrames = 4

// Body part names. The prefix before the first underscore selects the colour.
const (
	PartHead      = "head"
	PartTorso     = "torso"
	PartArmUpperL = "arm_upper_L"
	PartArmLowerL = "arm_lower_L"
	PartArmUpperR = "arm_upper_R"
	PartArmLowerR = "arm_lower_R"
	PartLegUpperL = "leg_upper_L"
	PartLegLowerL = "leg_lower_L"
	PartLegUpperR = "leg_upper_R"
	PartLegLowerR = "leg_lower_R"
	PartShoeL     = "shoe_L"
	PartShoeR     = "shoe_R"
)

// DrawOrder lists body parts back to front: the right side is behind the torso.
var DrawOrder = []string{
	PartLegUpperR, PartLegLowerR, PartShoeR, PartArmUpperR, PartArmLowerR,
	PartTorso,
	PartLegUpperL, PartLegLowerL, PartShoeL, PartArmUpperL, PartArmLowerL,
	PartHead,
}

// TrailParts are the parts echoed behind the player while dashing.
var TrailParts = []string{PartTorso, PartLegUpperL, PartLegLowerL, PartLegUpperR, PartLegLowerR, PartHead}

// Pose is one animation frame: named closed polygons in the drawing-surface
// frame (origin at the surface's top-left). Poses are shared and read-only.
type Pose struct {
	parts map[string]core.Polygon
}

// Part returns the polygon for a body part.
func (p Pose) Part(name string) (core.Polygon, bool) {
	poly, ok := p.parts[name]
	return poly, ok
}

// Len returns the number of parts in the pose.
func (p Pose) Len() int {
	return len(p.parts)
}

// BodyProportions are the inputs of the pose table: the collision box and the
// larger drawing surface the limbs are laid out on.
type BodyProportions struct {
	Width, Height         float64 // Collision box
	DrawWidth, DrawHeight float64 // Drawing surface
}

// PoseTable maps pose name and frame index to a Pose.
// It is built once and never mutated.
type PoseTable struct {
	poses map[PoseName][]Pose
}

// skeleton holds the derived body measurements shared by every pose.
type skeleton struct {
	cx, cy                     float64
	headR, torsoW, torsoH      float64
	limbW, upLimbH, loLimbH    float64
	shoeH, shoeFront, shoeBack float64
	neckY, shoulderY, shoulder float64
	hipY, hip, kneeOff         float64
}

func newSkeleton(b BodyProportions) skeleton {
	w, h := b.Width, b.Height
	s := skeleton{
		cx:      b.DrawWidth / 2,
		cy:      b.DrawHeight / 2,
		headR:   w * 0.18,
		torsoW:  w * 0.4,
		torsoH:  h * 0.45,
		limbW:   w * 0.15,
		upLimbH: h * 0.25,
		loLimbH: h * 0.30,
		shoeH:   h * 0.1,
	}
	s.shoeFront = s.limbW * 1.5
	s.shoeBack = s.limbW * 0.8
	s.neckY = s.cy - s.torsoH*0.45
	s.shoulderY = s.cy - s.torsoH*0.4
	s.shoulder = s.torsoW * 0.55
	s.hipY = s.cy + s.torsoH*0.45
	s.hip = s.torsoW * 0.45
	s.kneeOff = s.upLimbH * 1.1
	return s
}

// torso is a trapezoid narrowing towards the hips.
func (s skeleton) torso(cx, cy float64) core.Polygon {
	hw := s.torsoW / 2
	hh := s.torsoH / 2
	return core.Polygon{
		{X: cx - hw, Y: cy - hh},
		{X: cx + hw, Y: cy - hh},
		{X: cx + hw*0.8, Y: cy + hh},
		{X: cx - hw*0.8, Y: cy + hh},
	}
}

// head is a diamond hanging above the neck line.
func (s skeleton) head(cx, neckY float64) core.Polygon {
	return core.Polygon{
		{X: cx, Y: neckY - s.headR*1.5},
		{X: cx + s.headR, Y: neckY - s.headR*0.5},
		{X: cx, Y: neckY + s.headR*0.5},
		{X: cx - s.headR, Y: neckY - s.headR*0.5},
	}
}

// shoe is a wedge at the foot; front and back extend the toe and heel.
func (s skeleton) shoe(foot core.Point, front, back, frontTaper float64) core.Polygon {
	return core.Polygon{
		{X: foot.X - back, Y: foot.Y - s.shoeH/2},
		{X: foot.X + front, Y: foot.Y - s.shoeH/3},
		{X: foot.X + front*frontTaper, Y: foot.Y + s.shoeH/2},
		{X: foot.X - back, Y: foot.Y + s.shoeH/2},
	}
}

// dashShoe is the trailing foot of the dash: the long toe side reaches back
// and the short heel side tapers in front.
func (s skeleton) dashShoe(foot core.Point) core.Polygon {
	return core.Polygon{
		{X: foot.X - s.shoeFront, Y: foot.Y - s.shoeH/2},
		{X: foot.X + s.shoeBack, Y: foot.Y - s.shoeH/3},
		{X: foot.X + s.shoeBack*0.8, Y: foot.Y + s.shoeH/2},
		{X: foot.X - s.shoeFront, Y: foot.Y + s.shoeH/2},
	}
}

// limbs adds the two-segment arm or leg polygons for one side.
func (s skeleton) limbs(parts map[string]core.Polygon, upper, lower string, root, joint, end core.Point, upperW, lowerW float64) {
	parts[upper] = core.LimbPolygon(root, joint, upperW)
	parts[lower] = core.LimbPolygon(joint, end, lowerW)
}

// swing returns the point reached from p by a segment of length l at angle a.
func swing(p core.Point, a, l float64) core.Point {
	return core.Point{X: p.X + math.Cos(a)*l, Y: p.Y + math.Sin(a)*l}
}

// BuildPoseTable lays out every pose from the body proportions.
func BuildPoseTable(b BodyProportions) *PoseTable {
	s := newSkeleton(b)
	t := &PoseTable{poses: make(map[PoseName][]Pose, 4)}

	run := make([]Pose, 0, RunFrames)
	for i := 0; i < RunFrames; i++ {
		run = append(run, s.runFrame(i))
	}
	t.poses[PoseRun] = run
	t.poses[PoseJumpAscend] = []Pose{s.ascendFrame()}
	t.poses[PoseJumpDescend] = []Pose{s.descendFrame()}
	t.poses[PoseDash] = []Pose{s.dashFrame()}
	return t
}

// runFrame swings arms and legs in opposite phase with a vertical bob.
func (s skeleton) runFrame(i int) Pose {
	parts := make(map[string]core.Polygon, len(DrawOrder))
	phase := float64(i) * math.Pi / 2
	a1 := math.Sin(phase)
	a2 := math.Sin(phase + math.Pi)
	bob := math.Abs(math.Cos(phase)) * 3
	tcx, tcy := s.cx+a1*2, s.cy+bob

	parts[PartTorso] = s.torso(tcx, tcy)
	parts[PartHead] = s.head(tcx, s.neckY+bob)

	down, up := math.Pi/2, -math.Pi/2
	arm := func(upper, lower string, shoulderX, a float64) {
		sh := core.Pt(shoulderX, s.shoulderY+bob)
		elbow := swing(sh, a*0.8+down, s.upLimbH)
		hand := swing(elbow, a*0.6+down, s.loLimbH)
		s.limbs(parts, upper, lower, sh, elbow, hand, s.limbW, s.limbW*0.9)
	}
	arm(PartArmUpperL, PartArmLowerL, tcx-s.shoulder, a1)
	arm(PartArmUpperR, PartArmLowerR, tcx+s.shoulder, a2)

	leg := func(upper, lower, shoe string, hipX, a float64) {
		hp := core.Pt(hipX, s.hipY+bob)
		knee := swing(hp, a*0.9+up, s.kneeOff)
		foot := swing(knee, a*0.7+up, s.loLimbH)
		s.limbs(parts, upper, lower, hp, knee, foot, s.limbW*1.1, s.limbW)
		parts[shoe] = s.shoe(foot, s.shoeFront, s.shoeBack, 0.8)
	}
	leg(PartLegUpperL, PartLegLowerL, PartShoeL, tcx-s.hip, a2)
	leg(PartLegUpperR, PartLegLowerR, PartShoeR, tcx+s.hip, a1)

	return Pose{parts: parts}
}

// ascendFrame raises both arms and tucks the knees.
func (s skeleton) ascendFrame() Pose {
	parts := make(map[string]core.Polygon, len(DrawOrder))
	const lift = 5.0
	tcx, tcy := s.cx, s.cy-lift

	parts[PartTorso] = s.torso(tcx, tcy)
	parts[PartHead] = s.head(tcx, s.neckY-lift)

	for _, side := range []struct {
		upper, lower string
		dir          float64
	}{{PartArmUpperL, PartArmLowerL, -1}, {PartArmUpperR, PartArmLowerR, 1}} {
		sh := core.Pt(tcx+side.dir*s.shoulder, s.shoulderY-lift)
		elbow := sh.Add(side.dir*s.limbW, -s.upLimbH)
		hand := elbow.Add(0, -s.loLimbH)
		s.limbs(parts, side.upper, side.lower, sh, elbow, hand, s.limbW, s.limbW*0.9)
	}

	for _, side := range []struct {
		upper, lower, shoe string
		dir                float64
	}{{PartLegUpperL, PartLegLowerL, PartShoeL, -1}, {PartLegUpperR, PartLegLowerR, PartShoeR, 1}} {
		hp := core.Pt(tcx+side.dir*s.hip, s.hipY-lift)
		knee := hp.Add(-side.dir*s.limbW*0.5, -s.kneeOff*0.3)
		foot := knee.Add(-side.dir*s.limbW, s.loLimbH*0.6)
		s.limbs(parts, side.upper, side.lower, hp, knee, foot, s.limbW*1.1, s.limbW)
		parts[side.shoe] = s.shoe(foot, s.shoeFront, s.shoeBack, 0.8)
	}

	return Pose{parts: parts}
}

// descendFrame drops the arms and stretches the legs for landing.
func (s skeleton) descendFrame() Pose {
	parts := make(map[string]core.Polygon, len(DrawOrder))
	tcx, tcy := s.cx, s.cy

	parts[PartTorso] = s.torso(tcx, tcy)
	parts[PartHead] = s.head(tcx, s.neckY)

	for _, side := range []struct {
		upper, lower string
		dir          float64
	}{{PartArmUpperL, PartArmLowerL, -1}, {PartArmUpperR, PartArmLowerR, 1}} {
		sh := core.Pt(tcx+side.dir*s.shoulder, s.shoulderY)
		elbow := sh.Add(-side.dir*s.limbW*0.5, s.upLimbH*0.8)
		hand := elbow.Add(0, s.loLimbH)
		s.limbs(parts, side.upper, side.lower, sh, elbow, hand, s.limbW, s.limbW*0.9)
	}

	for _, side := range []struct {
		upper, lower, shoe string
		dir                float64
	}{{PartLegUpperL, PartLegLowerL, PartShoeL, -1}, {PartLegUpperR, PartLegLowerR, PartShoeR, 1}} {
		hp := core.Pt(tcx+side.dir*s.hip, s.hipY)
		knee := hp.Add(side.dir*s.limbW*0.2, s.kneeOff*0.9)
		foot := knee.Add(side.dir*s.limbW*0.5, s.loLimbH)
		s.limbs(parts, side.upper, side.lower, hp, knee, foot, s.limbW*1.1, s.limbW)
		parts[side.shoe] = s.shoe(foot, s.shoeFront*0.8, s.shoeBack, 0.75)
	}

	return Pose{parts: parts}
}

// dashFrame leans the body forward with arms and legs trailing behind.
func (s skeleton) dashFrame() Pose {
	parts := make(map[string]core.Polygon, len(DrawOrder))
	const lean = -math.Pi / 10
	tcx, tcy := s.cx+5, s.cy
	pivot := core.Pt(tcx, tcy)

	parts[PartTorso] = s.torso(tcx, tcy).Rotate(pivot, lean)
	parts[PartHead] = s.head(tcx, s.neckY).Rotate(pivot, lean)

	for _, side := range []struct {
		upper, lower string
		dir          float64
	}{{PartArmUpperL, PartArmLowerL, -1}, {PartArmUpperR, PartArmLowerR, 1}} {
		sh := core.RotatePoint(core.Pt(tcx+side.dir*s.shoulder, s.shoulderY), pivot, lean)
		elbow := sh.Add(-s.limbW*0.5, s.upLimbH*0.5)
		hand := elbow.Add(-s.loLimbH, 0)
		s.limbs(parts, side.upper, side.lower, sh, elbow, hand, s.limbW, s.limbW*0.9)
	}

	hipL := core.RotatePoint(core.Pt(tcx-s.hip, s.hipY), pivot, lean)
	hipR := core.RotatePoint(core.Pt(tcx+s.hip, s.hipY), pivot, lean)
	kneeL := hipL.Add(-s.kneeOff*0.7, s.limbW*0.3)
	kneeR := hipR.Add(-s.kneeOff*0.6, -s.limbW*0.2)
	footL := kneeL.Add(-s.loLimbH, 0)
	footR := kneeR.Add(-s.loLimbH*0.9, 0)
	s.limbs(parts, PartLegUpperL, PartLegLowerL, hipL, kneeL, footL, s.limbW*1.1, s.limbW)
	s.limbs(parts, PartLegUpperR, PartLegLowerR, hipR, kneeR, footR, s.limbW*1.1, s.limbW)
	parts[PartShoeL] = s.dashShoe(footL)
	parts[PartShoeR] = s.dashShoe(footR)

	return Pose{parts: parts}
}

// Frames returns the number of frames of a pose, or 0 if unknown.
func (t *PoseTable) Frames(name PoseName) int {
	return len(t.poses[name])
}

// Lookup returns the requested frame. Unknown poses or out-of-range frames
// fall back to the first running frame.
func (t *PoseTable) Lookup(name PoseName, frame int) (Pose, bool) {
	frames, ok := t.poses[name]
	if !ok || frame < 0 || frame >= len(frames) {
		return t.poses[PoseRun][0], false
	}
	return frames[frame], true
}
