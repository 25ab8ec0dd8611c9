// Package motion estimates how long a formation transition takes.
//
// Every drone flies a straight line under a symmetric profile: accelerate
// at MaxAccel, cruise at MaxSpeed, decelerate at MaxAccel to rest. Short
// hops never reach MaxSpeed and follow a triangular profile instead. With
// a = MaxAccel, v = MaxSpeed and distance d:
//
//	triangular (d < v²/a):  T = 2·sqrt(d/a)
//	trapezoidal (d ≥ v²/a): T = 2·v/a + (d − v²/a)/v
//
// The two branches meet at d = v²/a. Since all drones move at once, a
// transition lasts as long as its longest edge: MaxTransitionDuration.
//
// Units are the caller's; distances, speeds and accelerations only need
// to agree.
package motion
