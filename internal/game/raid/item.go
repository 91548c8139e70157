package raid

import "github.com/cory-johannsen/raidcalc/internal/game/dex"

// Item is the closed set of held items the engine knows. Names outside the
// set resolve to ItemOther, which has no effect anywhere.
type Item uint8

const (
	ItemNone Item = iota
	ItemOther

	SitrusBerry
	OranBerry
	FigyBerry
	WikiBerry
	MagoBerry
	AguavBerry
	IapapaBerry
	CheriBerry
	ChestoBerry
	PechaBerry
	RawstBerry
	AspearBerry
	LumBerry
	PersimBerry
	LiechiBerry
	GanlonBerry
	PetayaBerry
	ApicotBerry
	SalacBerry
	LansatBerry
	MicleBerry
	KeeBerry
	MarangaBerry
	OccaBerry
	PasshoBerry
	WacanBerry
	RindoBerry
	YacheBerry
	ChopleBerry
	KebiaBerry
	ShucaBerry
	CobaBerry
	PayapaBerry
	TangaBerry
	ChartiBerry
	KasibBerry
	HabanBerry
	ColburBerry
	BabiriBerry
	RoseliBerry
	ChilanBerry

	WhiteHerb
	MirrorHerb
	MentalHerb
	WeaknessPolicy
	FocusSash
	BoosterEnergy
	ElectricSeed
	GrassySeed
	MistySeed
	PsychicSeed
	AbsorbBulb
	CellBattery
	LuminousMoss
	Snowball
	AirBalloon
	ClearAmulet
	CovertCloak
	FlameOrb
	ToxicOrb
	LightBall
	PoisonBarb
	ChoiceScarf
	ChoiceBand
	ChoiceSpecs
	IronBall
	Leftovers
	LifeOrb

	numItems
)

// Which part of HP threshold logic a berry follows.
type berryKind uint8

const (
	notBerry berryKind = iota
	berryHalfHeal
	berryPinchHeal
	berryPinchStat
	berryCure
	berryResist
	berryOnHit
)

type itemTrait struct {
	name  string
	berry berryKind
	// heal is the berry heal as a fraction denominator, or a flat amount
	// when flat is set.
	heal int
	flat bool
	// dislike is the stat whose disliking natures get confused by a pinch
	// heal berry.
	dislike dex.Stat
	// boost is the stat raised by stat berries and on-hit items.
	boost dex.Stat
	// cures lists the statuses cured; confusion marks Lum and Persim.
	cures     []Status
	confusion bool
	// resist is the super effective type a resist berry weakens.
	resist dex.Type
	// hitType and hitCategory gate on-hit consumables.
	hitType     dex.Type
	hitCategory dex.Category
	seed        Terrain
	orb         Status
}

var itemTraits = [numItems]itemTrait{
	ItemNone:  {name: ""},
	ItemOther: {name: "(other)"},

	SitrusBerry:  {name: "Sitrus Berry", berry: berryHalfHeal, heal: 4},
	OranBerry:    {name: "Oran Berry", berry: berryHalfHeal, heal: 10, flat: true},
	FigyBerry:    {name: "Figy Berry", berry: berryPinchHeal, heal: 3, dislike: dex.Atk},
	WikiBerry:    {name: "Wiki Berry", berry: berryPinchHeal, heal: 3, dislike: dex.SpA},
	MagoBerry:    {name: "Mago Berry", berry: berryPinchHeal, heal: 3, dislike: dex.Spe},
	AguavBerry:   {name: "Aguav Berry", berry: berryPinchHeal, heal: 3, dislike: dex.SpD},
	IapapaBerry:  {name: "Iapapa Berry", berry: berryPinchHeal, heal: 3, dislike: dex.Def},
	CheriBerry:   {name: "Cheri Berry", berry: berryCure, cures: []Status{Paralysis}},
	ChestoBerry:  {name: "Chesto Berry", berry: berryCure, cures: []Status{Sleep}},
	PechaBerry:   {name: "Pecha Berry", berry: berryCure, cures: []Status{Poison, Toxic}},
	RawstBerry:   {name: "Rawst Berry", berry: berryCure, cures: []Status{Burn}},
	AspearBerry:  {name: "Aspear Berry", berry: berryCure, cures: []Status{Freeze}},
	LumBerry:     {name: "Lum Berry", berry: berryCure, cures: []Status{Paralysis, Poison, Burn, Freeze, Sleep, Toxic}, confusion: true},
	PersimBerry:  {name: "Persim Berry", berry: berryCure, confusion: true},
	LiechiBerry:  {name: "Liechi Berry", berry: berryPinchStat, boost: dex.Atk},
	GanlonBerry:  {name: "Ganlon Berry", berry: berryPinchStat, boost: dex.Def},
	PetayaBerry:  {name: "Petaya Berry", berry: berryPinchStat, boost: dex.SpA},
	ApicotBerry:  {name: "Apicot Berry", berry: berryPinchStat, boost: dex.SpD},
	SalacBerry:   {name: "Salac Berry", berry: berryPinchStat, boost: dex.Spe},
	LansatBerry:  {name: "Lansat Berry", berry: berryPinchStat, boost: dex.NoStat},
	MicleBerry:   {name: "Micle Berry", berry: berryPinchStat, boost: dex.NoStat},
	KeeBerry:     {name: "Kee Berry", berry: berryOnHit, boost: dex.Def, hitCategory: dex.Physical},
	MarangaBerry: {name: "Maranga Berry", berry: berryOnHit, boost: dex.SpD, hitCategory: dex.Special},
	OccaBerry:    {name: "Occa Berry", berry: berryResist, resist: dex.TypeFire},
	PasshoBerry:  {name: "Passho Berry", berry: berryResist, resist: dex.TypeWater},
	WacanBerry:   {name: "Wacan Berry", berry: berryResist, resist: dex.TypeElectric},
	RindoBerry:   {name: "Rindo Berry", berry: berryResist, resist: dex.TypeGrass},
	YacheBerry:   {name: "Yache Berry", berry: berryResist, resist: dex.TypeIce},
	ChopleBerry:  {name: "Chople Berry", berry: berryResist, resist: dex.TypeFighting},
	KebiaBerry:   {name: "Kebia Berry", berry: berryResist, resist: dex.TypePoison},
	ShucaBerry:   {name: "Shuca Berry", berry: berryResist, resist: dex.TypeGround},
	CobaBerry:    {name: "Coba Berry", berry: berryResist, resist: dex.TypeFlying},
	PayapaBerry:  {name: "Payapa Berry", berry: berryResist, resist: dex.TypePsychic},
	TangaBerry:   {name: "Tanga Berry", berry: berryResist, resist: dex.TypeBug},
	ChartiBerry:  {name: "Charti Berry", berry: berryResist, resist: dex.TypeRock},
	KasibBerry:   {name: "Kasib Berry", berry: berryResist, resist: dex.TypeGhost},
	HabanBerry:   {name: "Haban Berry", berry: berryResist, resist: dex.TypeDragon},
	ColburBerry:  {name: "Colbur Berry", berry: berryResist, resist: dex.TypeDark},
	BabiriBerry:  {name: "Babiri Berry", berry: berryResist, resist: dex.TypeSteel},
	RoseliBerry:  {name: "Roseli Berry", berry: berryResist, resist: dex.TypeFairy},
	ChilanBerry:  {name: "Chilan Berry", berry: berryResist, resist: dex.TypeNormal},

	WhiteHerb:      {name: "White Herb"},
	MirrorHerb:     {name: "Mirror Herb"},
	MentalHerb:     {name: "Mental Herb"},
	WeaknessPolicy: {name: "Weakness Policy"},
	FocusSash:      {name: "Focus Sash"},
	BoosterEnergy:  {name: "Booster Energy"},
	ElectricSeed:   {name: "Electric Seed", seed: ElectricTerrain, boost: dex.Def},
	GrassySeed:     {name: "Grassy Seed", seed: GrassyTerrain, boost: dex.Def},
	MistySeed:      {name: "Misty Seed", seed: MistyTerrain, boost: dex.SpD},
	PsychicSeed:    {name: "Psychic Seed", seed: PsychicTerrain, boost: dex.SpD},
	AbsorbBulb:     {name: "Absorb Bulb", hitType: dex.TypeWater, boost: dex.SpA},
	CellBattery:    {name: "Cell Battery", hitType: dex.TypeElectric, boost: dex.Atk},
	LuminousMoss:   {name: "Luminous Moss", hitType: dex.TypeWater, boost: dex.SpD},
	Snowball:       {name: "Snowball", hitType: dex.TypeIce, boost: dex.Atk},
	AirBalloon:     {name: "Air Balloon"},
	ClearAmulet:    {name: "Clear Amulet"},
	CovertCloak:    {name: "Covert Cloak"},
	FlameOrb:       {name: "Flame Orb", orb: Burn},
	ToxicOrb:       {name: "Toxic Orb", orb: Toxic},
	LightBall:      {name: "Light Ball", orb: Paralysis},
	PoisonBarb:     {name: "Poison Barb", orb: Poison},
	ChoiceScarf:    {name: "Choice Scarf"},
	ChoiceBand:     {name: "Choice Band"},
	ChoiceSpecs:    {name: "Choice Specs"},
	IronBall:       {name: "Iron Ball"},
	Leftovers:      {name: "Leftovers"},
	LifeOrb:        {name: "Life Orb"},
}

var itemsByID = func() map[string]Item {
	m := make(map[string]Item, numItems)
	for i := ItemOther + 1; i < numItems; i++ {
		m[dex.ID(itemTraits[i].name)] = i
	}
	return m
}()

// ParseItem resolves an item name. The empty name is ItemNone and every
// unknown name is ItemOther.
func ParseItem(name string) Item {
	id := dex.ID(name)
	if id == "" {
		return ItemNone
	}
	if i, ok := itemsByID[id]; ok {
		return i
	}
	return ItemOther
}

func (i Item) String() string {
	return i.trait().name
}

func (i Item) trait() itemTrait {
	if i >= numItems {
		return itemTraits[ItemOther]
	}
	return itemTraits[i]
}

// IsBerry reports whether the item is a berry.
func (i Item) IsBerry() bool { return i.trait().berry != notBerry }

// ResistType returns the type a resist berry weakens, or dex.TypeNone.
func (i Item) ResistType() dex.Type { return i.trait().resist }

// IsChoice reports whether the item locks its holder into one move.
func (i Item) IsChoice() bool {
	return i == ChoiceScarf || i == ChoiceBand || i == ChoiceSpecs
}

// Orb returns the status an end-of-turn orb inflicts on its holder, or
// StatusNone.
func (i Item) Orb() Status { return i.trait().orb }
