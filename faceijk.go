// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3go

import "math"

// quadrant tags into a face's icosaFaceNeighbors row
const (
	IJ = 1
	KI = 2
	JK = 3

	// INVALID_FACE marks a FaceIJK slot that has not been resolved to a face.
	INVALID_FACE = -1
)

// FaceIJK names a cell by the icosahedron face it projects onto plus its
// IJK hex coordinate within that face's coordinate system.
type FaceIJK struct {
	face  int
	coord CoordIJK
}

// FaceOrientIJK describes how to re-express a FaceIJK address that has
// wandered off its face in terms of a neighboring face: the destination
// face, the res-0 translation to apply, and the number of 60-degree CCW
// rotations between the two faces' coordinate systems.
type FaceOrientIJK struct {
	face      int
	translate CoordIJK
	ccwRot60  int
}

// Overage classifies where a substrate FaceIJK coordinate landed relative
// to the face it started on, after projecting and possibly crossing onto a
// neighboring face.
type Overage uint

const (
	// NO_OVERAGE means the coordinate is still interior to its original face.
	NO_OVERAGE Overage = 0
	// FACE_EDGE means the coordinate sits exactly on a face boundary; this
	// can only happen on substrate grids, never at whole-cell resolution.
	FACE_EDGE Overage = 1
	// NEW_FACE means the coordinate has been re-homed onto a different face.
	NEW_FACE Overage = 2
)

// M_SQRT7 is the per-resolution gnomonic scale factor (aperture 7 grows the
// grid by a linear factor of sqrt(7) each resolution step).
const M_SQRT7 = 2.6457513110645905905016157536392604257102

// icosaFaceCenterGeo holds the icosahedron face centers in lat/lon radians.
var icosaFaceCenterGeo = [NUM_ICOSA_FACES]GeoCoord{
	{0.803582649718989942, 1.248397419617396099},   // face  0
	{1.307747883455638156, 2.536945009877921159},   // face  1
	{1.054751253523952054, -1.347517358900396623},  // face  2
	{0.600191595538186799, -0.450603909469755746},  // face  3
	{0.491715428198773866, 0.401988202911306943},   // face  4
	{0.172745327415618701, 1.678146885280433686},   // face  5
	{0.605929321571350690, 2.953923329812411617},   // face  6
	{0.427370518328979641, -1.888876200336285401},  // face  7
	{-0.079066118549212831, -0.733429513380867741}, // face  8
	{-0.230961644455383637, 0.506495587332349035},  // face  9
	{0.079066118549212831, 2.408163140208925497},   // face 10
	{0.230961644455383637, -2.635097066257444203},  // face 11
	{-0.172745327415618701, -1.463445768309359553}, // face 12
	{-0.605929321571350690, -0.187669323777381622}, // face 13
	{-0.427370518328979641, 1.252716453253507838},  // face 14
	{-0.600191595538186799, 2.690988744120037492},  // face 15
	{-0.491715428198773866, -2.739604450678486295}, // face 16
	{-0.803582649718989942, -1.893195233972397139}, // face 17
	{-1.307747883455638156, -0.604647643711872080}, // face 18
	{-1.054751253523952054, 1.794075294689396615},  // face 19
}

// icosaFaceCenterPoint holds the icosahedron face centers as unit vectors.
var icosaFaceCenterPoint = [NUM_ICOSA_FACES]Vec3d{
	{0.2199307791404606, 0.6583691780274996, 0.7198475378926182},    // face  0
	{-0.2139234834501421, 0.1478171829550703, 0.9656017935214205},   // face  1
	{0.1092625278784797, -0.4811951572873210, 0.8697775121287253},   // face  2
	{0.7428567301586791, -0.3593941678278028, 0.5648005936517033},   // face  3
	{0.8112534709140969, 0.3448953237639384, 0.4721387736413930},    // face  4
	{-0.1055498149613921, 0.9794457296411413, 0.1718874610009365},   // face  5
	{-0.8075407579970092, 0.1533552485898818, 0.5695261994882688},   // face  6
	{-0.2846148069787907, -0.8644080972654206, 0.4144792552473539},  // face  7
	{0.7405621473854482, -0.6673299564565524, -0.0789837646326737},  // face  8
	{0.8512303986474293, 0.4722343788582681, -0.2289137388687808},   // face  9
	{-0.7405621473854481, 0.6673299564565524, 0.0789837646326737},   // face 10
	{-0.8512303986474292, -0.4722343788582682, 0.2289137388687808},  // face 11
	{0.1055498149613919, -0.9794457296411413, -0.1718874610009365},  // face 12
	{0.8075407579970092, -0.1533552485898819, -0.5695261994882688},  // face 13
	{0.2846148069787908, 0.8644080972654204, -0.4144792552473539},   // face 14
	{-0.7428567301586791, 0.3593941678278027, -0.5648005936517033},  // face 15
	{-0.8112534709140971, -0.3448953237639382, -0.4721387736413930}, // face 16
	{-0.2199307791404607, -0.6583691780274996, -0.7198475378926182}, // face 17
	{0.2139234834501420, -0.1478171829550704, -0.9656017935214205},  // face 18
	{-0.1092625278784796, 0.4811951572873210, -0.8697775121287253},  // face 19
}

// icosaFaceAxesAzRadsCII holds, per face, the azimuth in radians from the
// face center to CII vertices 0/1/2.
var icosaFaceAxesAzRadsCII = [NUM_ICOSA_FACES][3]float64{
	{5.619958268523939882, 3.525563166130744542, 1.431168063737548730}, // face  0
	{5.760339081714187279, 3.665943979320991689, 1.571548876927796127}, // face  1
	{0.780213654393430055, 4.969003859179821079, 2.874608756786625655}, // face  2
	{0.430469363979999913, 4.619259568766391033, 2.524864466373195467}, // face  3
	{6.130269123335111400, 4.035874020941915804, 1.941478918548720291}, // face  4
	{2.692877706530642877, 0.598482604137447119, 4.787272808923838195}, // face  5
	{2.982963003477243874, 0.888567901084048369, 5.077358105870439581}, // face  6
	{3.532912002790141181, 1.438516900396945656, 5.627307105183336758}, // face  7
	{3.494305004259568154, 1.399909901866372864, 5.588700106652763840}, // face  8
	{3.003214169499538391, 0.908819067106342928, 5.097609271892733906}, // face  9
	{5.930472956509811562, 3.836077854116615875, 1.741682751723420374}, // face 10
	{0.138378484090254847, 4.327168688876645809, 2.232773586483450311}, // face 11
	{0.448714947059150361, 4.637505151845541521, 2.543110049452346120}, // face 12
	{0.158629650112549365, 4.347419854898940135, 2.253024752505744869}, // face 13
	{5.891865957979238535, 3.797470855586042958, 1.703075753192847583}, // face 14
	{2.711123289609793325, 0.616728187216597771, 4.805518392002988683}, // face 15
	{3.294508837434268316, 1.200113735041072948, 5.388903939827463911}, // face 16
	{3.804819692245439833, 1.710424589852244509, 5.899214794638635174}, // face 17
	{3.664438879055192436, 1.570043776661997111, 5.758833981448388027}, // face 18
	{2.361378999196363184, 0.266983896803167583, 4.455774101589558636}, // face 19
}

// icosaFaceNeighbors records, for each face and each of its three
// neighboring quadrants (plus itself in slot 0), the FaceOrientIJK needed to
// re-express a coordinate that overflowed into that quadrant.
var icosaFaceNeighbors = [NUM_ICOSA_FACES][4]FaceOrientIJK{
	{
		{face: 0, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 4, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 1, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 5, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 1, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 0, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 2, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 6, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 2, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 1, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 3, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 7, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 3, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 2, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 4, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 8, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 4, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 3, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 0, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 9, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 5, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 10, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 14, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 0, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 6, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 11, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 10, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 1, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 7, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 12, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 11, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 2, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 8, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 13, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 12, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 3, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 9, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 14, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 13, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 4, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 10, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 5, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 6, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 15, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 11, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 6, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 7, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 16, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 12, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 7, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 8, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 17, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 13, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 8, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 9, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 18, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 14, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 9, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 3},
		{face: 5, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 3},
		{face: 19, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 15, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 16, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 19, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 10, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 16, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 17, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 15, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 11, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 17, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 18, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 16, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 12, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 18, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 19, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 17, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 13, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
	{
		{face: 19, translate: CoordIJK{i: 0, j: 0, k: 0}, ccwRot60: 0},
		{face: 15, translate: CoordIJK{i: 2, j: 0, k: 2}, ccwRot60: 1},
		{face: 18, translate: CoordIJK{i: 2, j: 2, k: 0}, ccwRot60: 5},
		{face: 14, translate: CoordIJK{i: 0, j: 2, k: 2}, ccwRot60: 3},
	},
}

// icosaAdjacentFaceDir[a][b] is the quadrant (IJ/KI/JK) that face b occupies
// relative to face a, or -1 if the two faces do not share an edge.
var icosaAdjacentFaceDir = [NUM_ICOSA_FACES][NUM_ICOSA_FACES]int{
	{0, KI, -1, -1, IJ, JK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{IJ, 0, KI, -1, -1, -1, JK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, IJ, 0, KI, -1, -1, -1, JK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, IJ, 0, KI, -1, -1, -1, JK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{KI, -1, -1, IJ, 0, -1, -1, -1, -1, JK, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{JK, -1, -1, -1, -1, 0, -1, -1, -1, -1, IJ, -1, -1, -1, KI, -1, -1, -1, -1, -1},
	{-1, JK, -1, -1, -1, -1, 0, -1, -1, -1, KI, IJ, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, JK, -1, -1, -1, -1, 0, -1, -1, -1, KI, IJ, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, JK, -1, -1, -1, -1, 0, -1, -1, -1, KI, IJ, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, JK, -1, -1, -1, -1, 0, -1, -1, -1, KI, IJ, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, IJ, KI, -1, -1, -1, 0, -1, -1, -1, -1, JK, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, IJ, KI, -1, -1, -1, 0, -1, -1, -1, -1, JK, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, IJ, KI, -1, -1, -1, 0, -1, -1, -1, -1, JK, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, IJ, KI, -1, -1, -1, 0, -1, -1, -1, -1, JK, -1},
	{-1, -1, -1, -1, -1, KI, -1, -1, -1, IJ, -1, -1, -1, -1, 0, -1, -1, -1, -1, JK},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, JK, -1, -1, -1, -1, 0, IJ, -1, -1, KI},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, JK, -1, -1, -1, KI, 0, IJ, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, JK, -1, -1, -1, KI, 0, IJ, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, JK, -1, -1, -1, KI, 0, IJ},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, JK, IJ, -1, -1, KI, 0},
}

// maxDimByCIIres is the largest i+j+k sum reachable on a Class II face grid
// at each even resolution; odd slots are unused (Class III only exists as a
// rotated Class II substrate) and carry -1 as a sentinel.
var maxDimByCIIres = [...]int{
	2, -1, 14, -1, 98, -1, 686, -1, 4802, -1,
	33614, -1, 235298, -1, 1647086, -1, 11529602,
}

// unitScaleByCIIres is the aperture-7 unit-length scale factor at each even
// resolution, used to translate a FaceOrientIJK's res-0 offset up to res.
var unitScaleByCIIres = [...]int{
	1, -1, 7, -1, 49, -1, 343, -1, 2401, -1,
	16807, -1, 117649, -1, 823543, -1, 5764801,
}

// sphereToFaceIJK projects a point on the sphere onto the containing cell's
// FaceIJK address at the given resolution.
func sphereToFaceIJK(g *GeoCoord, res int, h *FaceIJK) {
	v, face := sphereToFaceHex2d(g, res)
	h.face = face
	_hex2dToCoordIJK(&v, &h.coord)
}

// _geoToFaceIjk is kept for the shape of the legacy out-parameter call
// convention used elsewhere in this package; it just forwards to
// sphereToFaceIJK.
func _geoToFaceIjk(g *GeoCoord, res int, h *FaceIJK) {
	sphereToFaceIJK(g, res, h)
}

// sphereToFaceHex2d finds the icosahedron face nearest a point on the
// sphere and that point's 2D hex-plane coordinates on that face, relative
// to the face center.
func sphereToFaceHex2d(g *GeoCoord, res int) (Vec2d, int) {
	v3d := _geoToVec3d(g)

	face := 0
	sqd := _pointSquareDist(&icosaFaceCenterPoint[0], v3d)
	for f := 1; f < NUM_ICOSA_FACES; f++ {
		if d := _pointSquareDist(&icosaFaceCenterPoint[f], v3d); d < sqd {
			face, sqd = f, d
		}
	}

	// cos(r) = 1 - 2*sin^2(r/2) = 1 - 2*(sqd/4) = 1 - sqd/2
	r := math.Acos(1 - sqd/2)
	if r < EPSILON {
		return Vec2d{}, face
	}

	// CCW angle from the face's CII i-axis to the point's azimuth
	theta := _posAngleRads(icosaFaceAxesAzRadsCII[face][0] -
		_posAngleRads(_geoAzimuthRads(&icosaFaceCenterGeo[face], g)))
	if isResClassIII(res) {
		theta = _posAngleRads(theta - M_AP7_ROT_RADS)
	}

	r = gnomonicScale(math.Tan(r), res)

	return Vec2d{x: r * math.Cos(theta), y: r * math.Sin(theta)}, face
}

// gnomonicScale rescales a gnomonically-projected radius from res-0 unit
// length up to the unit length at res (aperture 7 shrinks cells by sqrt(7)
// per resolution, so the inverse grows the plane coordinate by the same
// factor).
func gnomonicScale(r float64, res int) float64 {
	r /= RES0_U_GNOMONIC
	for i := 0; i < res; i++ {
		r *= M_SQRT7
	}
	return r
}

// hex2dToSphere is the inverse of sphereToFaceHex2d: it recovers the
// spherical center point of a cell from its 2D hex-plane coordinates on a
// face. substrate indicates v lives on a substrate (vertex) grid rather
// than a whole-cell grid, which changes how the Class III rotation and
// aperture-3 scaling are undone.
func hex2dToSphere(v *Vec2d, face int, res int, substrate bool) GeoCoord {
	r := _v2dMag(v)
	if r < EPSILON {
		return icosaFaceCenterGeo[face]
	}

	theta := math.Atan2(v.y, v.x)
	for i := 0; i < res; i++ {
		r /= M_SQRT7
	}
	if substrate {
		r /= 3.0
		if isResClassIII(res) {
			r /= M_SQRT7
		}
	}
	r = math.Atan(r * RES0_U_GNOMONIC)

	// a substrate grid has already absorbed the Class III rotation
	if !substrate && isResClassIII(res) {
		theta = _posAngleRads(theta + M_AP7_ROT_RADS)
	}
	theta = _posAngleRads(icosaFaceAxesAzRadsCII[face][0] - theta)

	var g GeoCoord
	_geoAzDistanceRads(&icosaFaceCenterGeo[face], theta, r, &g)
	return g
}

// _hex2dToGeo preserves the legacy out-parameter signature for call sites
// that still expect it.
func _hex2dToGeo(v *Vec2d, face int, res int, substrate bool, g *GeoCoord) {
	*g = hex2dToSphere(v, face, res, substrate)
}

// _faceIjkToGeo determines the spherical center point of the cell named by
// a FaceIJK address at res.
func _faceIjkToGeo(h *FaceIJK, res int, g *GeoCoord) {
	var v Vec2d
	_ijkToHex2d(&h.coord, &v)
	*g = hex2dToSphere(&v, h.face, res, false)
}

// pentagonSubstrateOffsetsCII lists the five vertices of an origin-centered
// pentagon, CCW from the i-axis, on a Class II aperture-33r substrate grid.
var pentagonSubstrateOffsetsCII = [NUM_PENT_VERTS]CoordIJK{
	{i: 2, j: 1, k: 0},
	{i: 1, j: 2, k: 0},
	{i: 0, j: 2, k: 1},
	{i: 0, j: 1, k: 2},
	{i: 1, j: 0, k: 2},
}

// pentagonSubstrateOffsetsCIII is the Class III counterpart, on an
// aperture-33r7r substrate grid.
var pentagonSubstrateOffsetsCIII = [NUM_PENT_VERTS]CoordIJK{
	{i: 5, j: 4, k: 0},
	{i: 1, j: 5, k: 0},
	{i: 0, j: 5, k: 4},
	{i: 0, j: 1, k: 5},
	{i: 4, j: 0, k: 5},
}

// hexSubstrateOffsetsCII lists the six vertices of an origin-centered
// hexagon, CCW from the i-axis, on a Class II aperture-33r substrate grid.
var hexSubstrateOffsetsCII = [NUM_HEX_VERTS]CoordIJK{
	{i: 2, j: 1, k: 0},
	{i: 1, j: 2, k: 0},
	{i: 0, j: 2, k: 1},
	{i: 0, j: 1, k: 2},
	{i: 1, j: 0, k: 2},
	{i: 2, j: 0, k: 1},
}

// hexSubstrateOffsetsCIII is the Class III counterpart, on an
// aperture-33r7r substrate grid.
var hexSubstrateOffsetsCIII = [NUM_HEX_VERTS]CoordIJK{
	{i: 5, j: 4, k: 0},
	{i: 1, j: 5, k: 0},
	{i: 0, j: 5, k: 4},
	{i: 0, j: 1, k: 5},
	{i: 4, j: 0, k: 5},
	{i: 5, j: 0, k: 1},
}

// downToVertexSubstrate moves fijk's coordinate down onto the aperture-33r
// substrate grid shared by the hexagon and pentagon vertex tables (adding a
// further aperture-7r step for Class III resolutions, which also bumps the
// resolution by one to land back on a Class II substrate). It reports the
// substrate's resolution.
func downToVertexSubstrate(fijk *FaceIJK, res int) int {
	_downAp3(&fijk.coord)
	_downAp3r(&fijk.coord)
	if isResClassIII(res) {
		_downAp7r(&fijk.coord)
		res++
	}
	return res
}

// faceIjkPentToVerts returns the vertices of the pentagon cell at fijk as
// substrate FaceIJK addresses, CCW from the i-axis. *res is updated to the
// resolution of the returned substrate addresses.
func faceIjkPentToVerts(fijk *FaceIJK, res *int) []FaceIJK {
	offsets := pentagonSubstrateOffsetsCII
	if isResClassIII(*res) {
		offsets = pentagonSubstrateOffsetsCIII
	}
	*res = downToVertexSubstrate(fijk, *res)

	verts := make([]FaceIJK, NUM_PENT_VERTS)
	for v := range offsets {
		verts[v].face = fijk.face
		_ijkAdd(&fijk.coord, &offsets[v], &verts[v].coord)
		_ijkNormalize(&verts[v].coord)
	}
	return verts
}

// faceIjkToVerts returns the vertices of the hexagon cell at fijk as
// substrate FaceIJK addresses, CCW from the i-axis. *res is updated to the
// resolution of the returned substrate addresses.
func faceIjkToVerts(fijk *FaceIJK, res *int) []FaceIJK {
	offsets := hexSubstrateOffsetsCII
	if isResClassIII(*res) {
		offsets = hexSubstrateOffsetsCIII
	}
	*res = downToVertexSubstrate(fijk, *res)

	verts := make([]FaceIJK, NUM_HEX_VERTS)
	for v := range offsets {
		verts[v].face = fijk.face
		_ijkAdd(&fijk.coord, &offsets[v], &verts[v].coord)
		_ijkNormalize(&verts[v].coord)
	}
	return verts
}

// icosaFaceEdgeVerts returns, in substrate hex2d space, the three corners
// of the triangular icosahedron face at adjRes: the IJ/JK/KI edges run
// between consecutive pairs of these.
func icosaFaceEdgeVerts(adjRes int) (v0, v1, v2 Vec2d) {
	maxDim := float64(maxDimByCIIres[adjRes])
	v0 = Vec2d{x: 3.0 * maxDim}
	v1 = Vec2d{x: -1.5 * maxDim, y: 3.0 * M_SQRT3_2 * maxDim}
	v2 = Vec2d{x: -1.5 * maxDim, y: -3.0 * M_SQRT3_2 * maxDim}
	return v0, v1, v2
}

// icosaFaceEdgeByDir picks the two face-corner vertices bounding the given
// quadrant direction (IJ, JK, or KI).
func icosaFaceEdgeByDir(dir int, v0, v1, v2 Vec2d) (Vec2d, Vec2d) {
	switch dir {
	case IJ:
		return v0, v1
	case JK:
		return v1, v2
	default: // KI
		return v2, v0
	}
}

// _faceIjkPentToGeoBoundary generates the cell boundary in spherical
// coordinates for a pentagon cell given by a FaceIJK address at res,
// starting at vertex start and continuing for length vertices.
func _faceIjkPentToGeoBoundary(h *FaceIJK, res int, start int, length int, g *GeoBoundary) {
	adjRes := res
	centerIJK := *h
	fijkVerts := faceIjkPentToVerts(&centerIJK, &adjRes)

	// walking the whole loop needs one extra iteration in case a
	// distortion vertex falls on the closing edge
	additionalIteration := 0
	if length == NUM_PENT_VERTS {
		additionalIteration = 1
	}

	g.numVerts = 0
	var lastFijk FaceIJK
	for vert := start; vert < start+length+additionalIteration; vert++ {
		v := vert % NUM_PENT_VERTS
		fijk := fijkVerts[v]
		_adjustPentVertOverage(&fijk, adjRes)

		// all Class III pentagon edges cross an icosahedron edge; Class
		// II pentagons instead have a vertex sitting on the edge
		if isResClassIII(res) && vert > start {
			tmpFijk := fijk

			var orig2d0 Vec2d
			_ijkToHex2d(&lastFijk.coord, &orig2d0)

			currentToLastDir := icosaAdjacentFaceDir[tmpFijk.face][lastFijk.face]
			fijkOrient := &icosaFaceNeighbors[tmpFijk.face][currentToLastDir]

			tmpFijk.face = fijkOrient.face
			ijk := &tmpFijk.coord
			for i := 0; i < fijkOrient.ccwRot60; i++ {
				_ijkRotate60ccw(ijk)
			}
			transVec := fijkOrient.translate
			_ijkScale(&transVec, unitScaleByCIIres[adjRes]*3)
			_ijkAdd(ijk, &transVec, ijk)
			_ijkNormalize(ijk)

			var orig2d1 Vec2d
			_ijkToHex2d(ijk, &orig2d1)

			v0, v1, v2 := icosaFaceEdgeVerts(adjRes)
			edge0, edge1 := icosaFaceEdgeByDir(icosaAdjacentFaceDir[tmpFijk.face][fijk.face], v0, v1, v2)

			var inter Vec2d
			_v2dIntersect(&orig2d0, &orig2d1, &edge0, &edge1, &inter)
			g.verts[g.numVerts] = hex2dToSphere(&inter, tmpFijk.face, adjRes, true)
			g.numVerts++
		}

		// vert == start+NUM_PENT_VERTS only exists to test for a possible
		// intersection on the closing edge, not to emit a vertex of its own
		if vert < start+NUM_PENT_VERTS {
			var vec Vec2d
			_ijkToHex2d(&fijk.coord, &vec)
			g.verts[g.numVerts] = hex2dToSphere(&vec, fijk.face, adjRes, true)
			g.numVerts++
		}

		lastFijk = fijk
	}
}

// _faceIjkToGeoBoundary generates the cell boundary in spherical
// coordinates for a hexagon cell given by a FaceIJK address at res,
// starting at vertex start and continuing for length vertices.
func _faceIjkToGeoBoundary(h *FaceIJK, res int, start int, length int, g *GeoBoundary) {
	adjRes := res
	centerIJK := *h
	fijkVerts := faceIjkToVerts(&centerIJK, &adjRes)

	additionalIteration := 0
	if length == NUM_HEX_VERTS {
		additionalIteration = 1
	}

	g.numVerts = 0
	lastFace := -1
	lastOverage := NO_OVERAGE
	for vert := start; vert < start+length+additionalIteration; vert++ {
		v := vert % NUM_HEX_VERTS
		fijk := fijkVerts[v]
		overage := _adjustOverageClassII(&fijk, adjRes, false, true)

		// Each icosahedron face is a distinct projection plane, so a
		// hexagon edge crossing a face edge needs an extra vertex at the
		// crossing point, each half projected through its own face. Class
		// II cell edges instead meet the face edge at a vertex, with no
		// line intersection required.
		if isResClassIII(res) && vert > start && fijk.face != lastFace && lastOverage != FACE_EDGE {
			lastV := (v + 5) % NUM_HEX_VERTS
			var orig2d0 Vec2d
			_ijkToHex2d(&fijkVerts[lastV].coord, &orig2d0)

			var orig2d1 Vec2d
			_ijkToHex2d(&fijkVerts[v].coord, &orig2d1)

			v0, v1, v2 := icosaFaceEdgeVerts(adjRes)

			face2 := lastFace
			if lastFace == centerIJK.face {
				face2 = fijk.face
			}
			edge0, edge1 := icosaFaceEdgeByDir(icosaAdjacentFaceDir[centerIJK.face][face2], v0, v1, v2)

			var inter Vec2d
			_v2dIntersect(&orig2d0, &orig2d1, &edge0, &edge1, &inter)

			// if the intersection lands exactly on a hexagon vertex, both
			// adjacent edges already lie on a single face and no extra
			// vertex is needed
			if !_v2dEquals(&orig2d0, &inter) && !_v2dEquals(&orig2d1, &inter) {
				g.verts[g.numVerts] = hex2dToSphere(&inter, centerIJK.face, adjRes, true)
				g.numVerts++
			}
		}

		if vert < start+NUM_HEX_VERTS {
			var vec Vec2d
			_ijkToHex2d(&fijk.coord, &vec)
			g.verts[g.numVerts] = hex2dToSphere(&vec, fijk.face, adjRes, true)
			g.numVerts++
		}

		lastFace = fijk.face
		lastOverage = overage
	}
}

// _adjustOverageClassII re-homes a substrate or whole-cell FaceIJK address
// onto the correct icosahedron face in place, reporting whether (and how)
// it had wandered off the face it started on.
func _adjustOverageClassII(fijk *FaceIJK, res int, pentLeading4 bool, substrate bool) Overage {
	ijk := &fijk.coord
	maxDim := maxDimByCIIres[res]
	if substrate {
		maxDim *= 3
	}

	if substrate && ijk.i+ijk.j+ijk.k == maxDim {
		return FACE_EDGE
	}
	if ijk.i+ijk.j+ijk.k <= maxDim {
		return NO_OVERAGE
	}

	var fijkOrient *FaceOrientIJK
	switch {
	case ijk.k > 0 && ijk.j > 0: // jk quadrant
		fijkOrient = &icosaFaceNeighbors[fijk.face][JK]
	case ijk.k > 0: // ik quadrant
		fijkOrient = &icosaFaceNeighbors[fijk.face][KI]
		if pentLeading4 {
			// undo the pentagon's missing sequence: rotate about the
			// pentagon at the face corner (maxDim,0,0) rather than the
			// face origin
			var origin CoordIJK
			_setIJK(&origin, maxDim, 0, 0)
			var tmp CoordIJK
			_ijkSub(ijk, &origin, &tmp)
			_ijkRotate60cw(&tmp)
			_ijkAdd(&tmp, &origin, ijk)
		}
	default: // ij quadrant
		fijkOrient = &icosaFaceNeighbors[fijk.face][IJ]
	}

	fijk.face = fijkOrient.face
	for i := 0; i < fijkOrient.ccwRot60; i++ {
		_ijkRotate60ccw(ijk)
	}

	transVec := fijkOrient.translate
	unitScale := unitScaleByCIIres[res]
	if substrate {
		unitScale *= 3
	}
	_ijkScale(&transVec, unitScale)
	_ijkAdd(ijk, &transVec, ijk)
	_ijkNormalize(ijk)

	// a pentagon-boundary overage point can land exactly on the new face's edge
	if substrate && ijk.i+ijk.j+ijk.k == maxDim {
		return FACE_EDGE
	}
	return NEW_FACE
}

// _adjustPentVertOverage repeatedly re-homes a pentagon vertex's substrate
// FaceIJK address until it settles on a single face (a pentagon vertex can
// overflow through more than one neighboring face in a row).
func _adjustPentVertOverage(fijk *FaceIJK, res int) Overage {
	var overage Overage
	for {
		overage = _adjustOverageClassII(fijk, res, false, true)
		if overage != NEW_FACE {
			return overage
		}
	}
}
