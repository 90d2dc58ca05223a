// internal/defs/tiles.go
package defs

import "image/color"

// TileKind is the closed set of tile kinds. The zero value is TileEmpty, which
// only appears while a cleared cell waits for refill.
type TileKind uint8

const (
	TileEmpty TileKind = iota

	// Base kinds, the only ones that spawn naturally.
	TileBulletN
	TileBulletS
	TileBulletE
	TileBulletW
	TileGrenade
	TileGasoline
	TileMedkit

	// Powered kinds, created as a bonus for 4-matches.
	TileHeavyN
	TileHeavyS
	TileHeavyE
	TileHeavyW
	TileRocket
	TileNapalm
	TileMegaMedkit

	// TileAirstrike is the wildcard, created for 5-matches and crossings.
	TileAirstrike

	tileKindCount
)

// TileWildcard is the kind that extends any run.
const TileWildcard = TileAirstrike

// BaseKinds lists the seven naturally spawning kinds in draw order.
var BaseKinds = [...]TileKind{
	TileBulletN,
	TileBulletS,
	TileBulletE,
	TileBulletW,
	TileGrenade,
	TileGasoline,
	TileMedkit,
}

var basePowered = [...]struct{ base, powered TileKind }{
	{TileBulletN, TileHeavyN},
	{TileBulletS, TileHeavyS},
	{TileBulletE, TileHeavyE},
	{TileBulletW, TileHeavyW},
	{TileGrenade, TileRocket},
	{TileGasoline, TileNapalm},
	{TileMedkit, TileMegaMedkit},
}

var (
	poweredOf [tileKindCount]TileKind
	baseOf    [tileKindCount]TileKind
)

func init() {
	for _, p := range basePowered {
		poweredOf[p.base] = p.powered
		baseOf[p.base] = p.base
		baseOf[p.powered] = p.base
	}
	baseOf[TileAirstrike] = TileAirstrike
}

// Valid reports whether k is a real tile (not empty, not out of range).
func (k TileKind) Valid() bool {
	return k > TileEmpty && k < tileKindCount
}

// IsBase reports whether k is one of the seven base kinds.
func (k TileKind) IsBase() bool {
	return k >= TileBulletN && k <= TileMedkit
}

// IsPowered reports whether k is an upgraded kind.
func (k TileKind) IsPowered() bool {
	return k >= TileHeavyN && k <= TileMegaMedkit
}

// IsWildcard reports whether k extends any run.
func (k TileKind) IsWildcard() bool {
	return k == TileWildcard
}

// Base maps a powered kind to its base kind. Base kinds and the wildcard map to
// themselves; TileEmpty maps to TileEmpty.
func (k TileKind) Base() TileKind {
	if !k.Valid() {
		return TileEmpty
	}
	return baseOf[k]
}

// Powered maps a base or powered kind to its powered kind. The wildcard has no
// powered counterpart and reports false.
func (k TileKind) Powered() (TileKind, bool) {
	if !k.Valid() || k.IsWildcard() {
		return TileEmpty, false
	}
	return poweredOf[k.Base()], true
}

// Family groups kinds by the weapon they fire.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyBullet
	FamilyGrenade
	FamilyGasoline
	FamilyMedkit
	FamilyAirstrike
)

// Family returns the weapon family of k.
func (k TileKind) Family() Family {
	switch k.Base() {
	case TileBulletN, TileBulletS, TileBulletE, TileBulletW:
		return FamilyBullet
	case TileGrenade:
		return FamilyGrenade
	case TileGasoline:
		return FamilyGasoline
	case TileMedkit:
		return FamilyMedkit
	case TileAirstrike:
		return FamilyAirstrike
	}
	return FamilyNone
}

// Direction is a cardinal firing direction in screen space (y grows down).
type Direction uint8

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// Direction returns the firing direction of a bullet-family kind.
func (k TileKind) Direction() Direction {
	switch k.Base() {
	case TileBulletN:
		return DirNorth
	case TileBulletS:
		return DirSouth
	case TileBulletE:
		return DirEast
	case TileBulletW:
		return DirWest
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "N"
	case DirSouth:
		return "S"
	case DirEast:
		return "E"
	case DirWest:
		return "W"
	}
	return "-"
}

var tileNames = [tileKindCount]string{
	TileEmpty:      "empty",
	TileBulletN:    "bullet_n",
	TileBulletS:    "bullet_s",
	TileBulletE:    "bullet_e",
	TileBulletW:    "bullet_w",
	TileGrenade:    "grenade",
	TileGasoline:   "gasoline",
	TileMedkit:     "medkit",
	TileHeavyN:     "heavy_n",
	TileHeavyS:     "heavy_s",
	TileHeavyE:     "heavy_e",
	TileHeavyW:     "heavy_w",
	TileRocket:     "rocket",
	TileNapalm:     "napalm",
	TileMegaMedkit: "mega_medkit",
	TileAirstrike:  "airstrike",
}

func (k TileKind) String() string {
	if k >= tileKindCount {
		return "invalid"
	}
	return tileNames[k]
}

var tileLabels = [tileKindCount]string{
	TileBulletN:    "^",
	TileBulletS:    "v",
	TileBulletE:    ">",
	TileBulletW:    "<",
	TileGrenade:    "G",
	TileGasoline:   "F",
	TileMedkit:     "+",
	TileHeavyN:     "^^",
	TileHeavyS:     "vv",
	TileHeavyE:     ">>",
	TileHeavyW:     "<<",
	TileRocket:     "R",
	TileNapalm:     "N",
	TileMegaMedkit: "++",
	TileAirstrike:  "*",
}

// Label is the short glyph drawn on a tile.
func (k TileKind) Label() string {
	if k >= tileKindCount {
		return "?"
	}
	return tileLabels[k]
}

var familyColors = map[Family]color.RGBA{
	FamilyGrenade:   {0xe0, 0x50, 0x40, 0xff},
	FamilyGasoline:  {0xf0, 0x80, 0x30, 0xff},
	FamilyMedkit:    {0x40, 0xd0, 0x70, 0xff},
	FamilyAirstrike: {0xff, 0xff, 0xff, 0xff},
}

var bulletColors = map[Direction]color.RGBA{
	DirNorth: {0xf0, 0xc0, 0x40, 0xff},
	DirSouth: {0xd4, 0xa8, 0x30, 0xff},
	DirEast:  {0x40, 0xa0, 0xf0, 0xff},
	DirWest:  {0x80, 0x60, 0xe0, 0xff},
}

// Color is the fill color of a tile; powered kinds share their base color.
func (k TileKind) Color() color.RGBA {
	if d := k.Direction(); d != DirNone {
		return bulletColors[d]
	}
	if c, ok := familyColors[k.Family()]; ok {
		return c
	}
	return color.RGBA{0x30, 0x30, 0x30, 0xff}
}
