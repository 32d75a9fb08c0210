// Package aero provides aerodynamic models for the mission segments.
package aero

import (
	"fmt"
	"math"

	"github.com/ChristopherRabotin/amd"
)

// DragPolar is a linear lift curve with a parabolic drag polar, a drag rise past the critical
// Mach number and a linear pitching moment.
type DragPolar struct {
	LiftSlope        float64 // CLα, per radian
	ZeroLiftAngle    float64 // α0, radians
	MaxLift          float64 // CL max; zero means no stall clipping
	ZeroLiftDrag     float64 // CD0
	InducedDrag      float64 // K, with CD = CD0 + K CL²
	CriticalMach     float64 // zero disables the drag rise
	ElevatorLift     float64 // CLδe, per radian
	MomentZero       float64 // Cm0
	MomentSlope      float64 // Cmα, per radian
	ElevatorMoment   float64 // Cmδe, per radian
	ElevatorDragGain float64 // additional CD per radian² of elevator
}

// NewDragPolar returns a polar from the usual design parameters: aspect ratio and Oswald
// efficiency give K, and the lift slope follows from the aspect ratio (Helmbold).
func NewDragPolar(aspectRatio, oswald, cd0 float64) *DragPolar {
	A := aspectRatio
	slope := 2 * math.Pi * A / (2 + math.Sqrt(A*A+4))
	return &DragPolar{
		LiftSlope:    slope,
		ZeroLiftDrag: cd0,
		InducedDrag:  1 / (math.Pi * A * oswald),
		CriticalMach: 0.7,
		MomentSlope:  -0.5,
	}
}

// Validate checks the polar can produce lift and drag.
func (p *DragPolar) Validate() error {
	if p.LiftSlope <= 0 || p.ZeroLiftDrag <= 0 || p.InducedDrag < 0 {
		return fmt.Errorf("%w: drag polar needs a positive lift slope and zero lift drag", amd.ErrConfig)
	}
	return nil
}

// Coefficients returns the lift, drag and moment coefficients at one flight condition.
func (p *DragPolar) Coefficients(α, mach, δe float64) (CL, CD, Cm float64) {
	CL = p.LiftSlope*(α-p.ZeroLiftAngle) + p.ElevatorLift*δe
	if p.MaxLift > 0 && math.Abs(CL) > p.MaxLift {
		CL = math.Copysign(p.MaxLift, CL)
	}
	CD = p.ZeroLiftDrag + p.InducedDrag*CL*CL + p.ElevatorDragGain*δe*δe + p.waveDrag(mach)
	Cm = p.MomentZero + p.MomentSlope*α + p.ElevatorMoment*δe
	return
}

// waveDrag is Lock's fourth power drag rise.
func (p *DragPolar) waveDrag(mach float64) float64 {
	if p.CriticalMach <= 0 || mach <= p.CriticalMach {
		return 0
	}
	return 20 * math.Pow(mach-p.CriticalMach, 4)
}

// Evaluate implements the amd.Aerodynamics interface.
func (p *DragPolar) Evaluate(st *amd.State) error {
	c := st.Conditions
	α, M, δe := c.Leaf(amd.PathAlpha), c.Leaf(amd.PathMach), c.Leaf(amd.PathElevator)
	CL, CD, Cm := c.Leaf(amd.PathLiftCoefficient), c.Leaf(amd.PathDragCoefficient), c.Leaf(amd.PathMomentCoefficient)
	r, _ := α.Dims()
	for i := 0; i < r; i++ {
		cl, cd, cm := p.Coefficients(α.At(i, 0), M.At(i, 0), δe.At(i, 0))
		CL.Set(i, 0, cl)
		CD.Set(i, 0, cd)
		Cm.Set(i, 0, cm)
	}
	return nil
}
