// SPDX-License-Identifier: MIT

package instr

// Sampling methods.
const (
	SampleUniform     = "uniform"
	SampleTriangle    = "triangle"
	SampleAcuteTri    = "acuteTri"
	SampleAcuteIsoTri = "acuteIsoTri"
	SampleIsoTri      = "isoTri"
	SampleRightTri    = "rightTri"
	SampleEquiTri     = "equiTri"
	SamplePolygon     = "polygon"
)

// Computation methods.
const (
	CompMidp                = "midp"
	CompMidpFrom            = "midpFrom"
	CompCentroid            = "centroid"
	CompCircumcenter        = "circumcenter"
	CompIncenter            = "incenter"
	CompExcenter            = "excenter"
	CompOrthocenter         = "orthocenter"
	CompMixtilinearIncenter = "mixtilinearIncenter"
	CompInterLL             = "interLL"
	CompInterLC             = "interLC"
	CompInterCC             = "interCC"
	CompIsogonal            = "isogonal"
	CompIsotomic            = "isotomic"
	CompInverse             = "inverse"
	CompHarmonicLConj       = "harmonicLConj"
	CompAmidpOpp            = "amidpOpp"
	CompAmidpSame           = "amidpSame"
	CompFoot                = "foot"
	CompReflectPL           = "reflectPL"
)

// Parameterization methods.
const (
	ParamCoords   = "coords"
	ParamOnSeg    = "onSeg"
	ParamOnLine   = "onLine"
	ParamOnRay    = "onRay"
	ParamOnRayOpp = "onRayOpp"
	ParamOnCirc   = "onCirc"
	ParamInPoly   = "inPoly"
)

// Predicates.
const (
	PredAmidpOpp      = "amidpOpp"
	PredAmidpSame     = "amidpSame"
	PredBetween       = "between"
	PredCircumcenter  = "circumcenter"
	PredColl          = "coll"
	PredCong          = "cong"
	PredContri        = "contri"
	PredCycl          = "cycl"
	PredDistLt        = "distLt"
	PredDistGt        = "distGt"
	PredEqAngle       = "eqangle"
	PredEqOAngle      = "eqoangle"
	PredEqRatio       = "eqratio"
	PredFoot          = "foot"
	PredIBisector     = "ibisector"
	PredIncenter      = "incenter"
	PredInsidePolygon = "insidePolygon"
	PredInterLL       = "interLL"
	PredIsogonal      = "isogonal"
	PredMidp          = "midp"
	PredOnRay         = "onRay"
	PredOnSeg         = "onSeg"
	PredOppSides      = "oppSides"
	PredOrthocenter   = "orthocenter"
	PredPerp          = "perp"
	PredPara          = "para"
	PredReflectPL     = "reflectPL"
	PredSameSide      = "sameSide"
	PredSimTri        = "simtri"
)

// Line kinds.
const (
	LineConnecting = "connecting"
	LineParaAt     = "paraAt"
	LinePerpAt     = "perpAt"
	LineMediator   = "mediator"
	LineIBisector  = "ibisector"
	LineEBisector  = "ebisector"
	LineEqOAngle   = "eqoangle"
)

// Circle kinds.
const (
	CircC3   = "c3"
	CircCoa  = "coa"
	CircCong = "cong"
	CircDiam = "diam"
)

// Root-selection policies.
const (
	RootNeq         = "neq"
	RootCloserTo    = "closerTo"
	RootFurtherFrom = "furtherFrom"
	RootOppSides    = "oppSides"
	RootSameSide    = "sameSide"
	RootArbitrary   = "arbitrary"
)
