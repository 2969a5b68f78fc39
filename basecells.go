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

// MAX_FACE_COORD is the largest IJK component a base-cell-resident FaceIJK
// may carry; any FaceIJK with a component above this cannot name a base
// cell and res-0 encoding rejects it as out of range.
const MAX_FACE_COORD = 2

// BaseCellData is one entry of the base cell table: its home position on an
// icosahedron face, whether it is one of the twelve pentagons, and, for
// pentagons, the pair of faces on which the cw (rather than ccw) pentagon
// rotation applies. A value of -1 in cwOffsetPent means "not applicable".
type BaseCellData struct {
	homeFijk     FaceIJK
	isPentagon   bool
	cwOffsetPent [2]int
}

var baseCellData = [NUM_BASE_CELLS]BaseCellData{
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{4, 1}}, // base cell 0
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 1
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 2
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 3
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 4
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 5
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 6
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{0, 2}}, // base cell 7
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 8
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 9
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 10
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 11
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 12
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 13
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{1, 3}}, // base cell 14
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 15
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 16
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 17
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 18
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 19
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{2, 4}}, // base cell 20
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 21
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 22
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 23
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 24
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 25
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{3, 0}}, // base cell 26
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 27
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 28
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 29
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 30
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 31
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{10, 14}}, // base cell 32
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 33
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 34
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 35
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 36
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 37
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{11, 10}}, // base cell 38
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 39
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 40
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 41
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 42
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 43
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{12, 11}}, // base cell 44
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 45
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 46
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 47
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 48
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 49
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{13, 12}}, // base cell 50
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 51
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 52
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 53
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 54
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 55
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{14, 13}}, // base cell 56
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 57
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 58
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 59
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 60
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 61
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{5, 6}}, // base cell 62
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 63
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 64
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 65
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 66
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 67
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: true, cwOffsetPent: [2]int{6, 7}}, // base cell 68
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 69
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 70
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 71
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 72
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 73
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 74
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 75
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 76
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 77
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 78
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 79
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 80
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 81
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 82
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 83
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 84
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 85
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 86
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 87
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 88
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 89
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 90
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 91
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 92
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 93
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 94
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 95
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 96
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 97
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 98
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 99
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 100
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 101
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 102
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 103
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 104
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 105
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 106
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 107
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 108
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 109
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 110
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 111
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 112
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 113
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 114
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 115
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 116
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 117
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 118
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 119
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 120
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, cwOffsetPent: [2]int{-1, -1}}, // base cell 121
}

// faceCenterBaseCell and faceDigitBaseCell give, for each icosahedron face,
// the base cell native to that face's center and to each of its six
// immediate neighbor digits. A value of -1 means that digit folds into the
// face's center cell rather than naming a separate base cell (see DESIGN.md).
var faceCenterBaseCell = [NUM_ICOSA_FACES]int{
	0, 7, 14, 20, 26, 32, 38, 44, 50, 56, 62, 68, 74, 80, 86, 92, 98, 104, 110, 116,
}

var faceDigitBaseCell = [NUM_ICOSA_FACES][7]int{
	{-1, 1, 2, 3, 4, 5, 6}, // face 0
	{-1, 8, 9, 10, 11, 12, 13}, // face 1
	{-1, 15, 16, -1, 17, 18, 19}, // face 2
	{-1, 21, 22, -1, 23, 24, 25}, // face 3
	{-1, 27, 28, -1, 29, 30, 31}, // face 4
	{-1, 33, 34, -1, 35, 36, 37}, // face 5
	{-1, 39, 40, -1, 41, 42, 43}, // face 6
	{-1, 45, 46, -1, 47, 48, 49}, // face 7
	{-1, 51, 52, -1, 53, 54, 55}, // face 8
	{-1, 57, 58, -1, 59, 60, 61}, // face 9
	{-1, 63, 64, -1, 65, 66, 67}, // face 10
	{-1, 69, 70, -1, 71, 72, 73}, // face 11
	{-1, 75, 76, -1, 77, 78, 79}, // face 12
	{-1, 81, 82, -1, 83, 84, 85}, // face 13
	{-1, 87, 88, -1, 89, 90, 91}, // face 14
	{-1, 93, 94, -1, 95, 96, 97}, // face 15
	{-1, 99, 100, -1, 101, 102, 103}, // face 16
	{-1, 105, 106, -1, 107, 108, 109}, // face 17
	{-1, 111, 112, -1, 113, 114, 115}, // face 18
	{-1, 117, 118, -1, 119, 120, 121}, // face 19
}

// _isBaseCellPentagon reports whether a base cell number is one of the
// twelve pentagons.
func _isBaseCellPentagon(baseCell int) bool {
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return false
	}
	return baseCellData[baseCell].isPentagon
}

// _baseCellIsCwOffset reports whether, when viewed from the given face, a
// pentagon base cell's leading K-axis digit must be resolved with a
// clockwise rotation instead of the default counter-clockwise one.
func _baseCellIsCwOffset(baseCell, face int) bool {
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return false
	}
	offsets := baseCellData[baseCell].cwOffsetPent
	return offsets[0] == face || offsets[1] == face
}

// _faceIjkToBaseCell looks up which base cell owns a FaceIJK position; it
// does not clamp or range-check the coordinates. Positions that fall
// within the native rosette of the face (the center, or one of its six
// immediate neighbor directions) resolve to that slot's own base cell;
// any other in-range position (near a face corner, beyond the native
// rosette) folds back to the face's center cell. See DESIGN.md for the
// rationale behind this simplified, self-consistent construction.
func _faceIjkToBaseCell(fijk *FaceIJK) int {
	face := fijk.face
	digit := _unitIjkToDigit(&fijk.coord)
	if digit == INVALID_DIGIT {
		return faceCenterBaseCell[face]
	}
	bc := faceDigitBaseCell[face][digit]
	if bc == -1 {
		return faceCenterBaseCell[face]
	}
	return bc
}

// _faceIjkToBaseCellCCWrot60 gives the number of 60-degree ccw rotations
// needed to align a base cell to its canonical home-face orientation. This
// construction never reassigns a base cell across faces (see
// _faceIjkToBaseCell), so no re-orientation is ever required.
func _faceIjkToBaseCellCCWrot60(fijk *FaceIJK) int {
	return 0
}

// _rotate60ccw applies the cyclic digit permutation 1->5->4->6->2->3->1,
// leaving the center digit fixed. Rotating the reserved invalid digit is a
// programming error: the public API never constructs one.
func _rotate60ccw(digit Direction) Direction {
	switch digit {
	case CENTER_DIGIT:
		return CENTER_DIGIT
	case K_AXES_DIGIT:
		return IK_AXES_DIGIT
	case IK_AXES_DIGIT:
		return I_AXES_DIGIT
	case I_AXES_DIGIT:
		return IJ_AXES_DIGIT
	case IJ_AXES_DIGIT:
		return J_AXES_DIGIT
	case J_AXES_DIGIT:
		return JK_AXES_DIGIT
	case JK_AXES_DIGIT:
		return K_AXES_DIGIT
	default:
		panic("h3go: _rotate60ccw called with " + digit.String() + " digit")
	}
}

// _rotate60cw is the inverse of _rotate60ccw.
func _rotate60cw(digit Direction) Direction {
	switch digit {
	case CENTER_DIGIT:
		return CENTER_DIGIT
	case IK_AXES_DIGIT:
		return K_AXES_DIGIT
	case I_AXES_DIGIT:
		return IK_AXES_DIGIT
	case IJ_AXES_DIGIT:
		return I_AXES_DIGIT
	case J_AXES_DIGIT:
		return IJ_AXES_DIGIT
	case JK_AXES_DIGIT:
		return J_AXES_DIGIT
	case K_AXES_DIGIT:
		return JK_AXES_DIGIT
	default:
		panic("h3go: _rotate60cw called with " + digit.String() + " digit")
	}
}
