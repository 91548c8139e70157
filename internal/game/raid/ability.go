package raid

import "github.com/cory-johannsen/raidcalc/internal/game/dex"

// Ability is the closed set of abilities the engine knows. Names outside the
// set resolve to AbilityOther, which has no effect anywhere.
type Ability uint8

const (
	AbilityNone Ability = iota
	AbilityOther

	Drought
	Drizzle
	SandStream
	SnowWarning
	OrichalcumPulse
	ElectricSurge
	GrassySurge
	MistySurge
	PsychicSurge
	HadronEngine
	SeedSower
	SandSpit
	CloudNine
	AirLock
	SwordOfRuin
	BeadsOfRuin
	TabletsOfRuin
	VesselOfRuin
	FriendGuard
	PowerSpot
	SteelySpirit
	Battery
	NeutralizingGas

	Protosynthesis
	QuarkDrive
	Unburden
	Chlorophyll
	SwiftSwim
	SandRush
	SlushRush
	SurgeSurfer
	QuickFeet
	SlowStart
	Simple
	Contrary

	Intimidate
	Download
	IntrepidSword
	DauntlessShield
	SupersweetSyrup
	Costar
	ScreenCleaner
	CuriousMedicine
	SupremeOverlord
	Unnerve
	AsOne

	ClearBody
	WhiteSmoke
	FullMetalBody
	HyperCutter
	BigPecks
	KeenEye
	MindsEye
	InnerFocus
	Oblivious
	OwnTempo
	Scrappy
	GuardDog
	Rattled
	MirrorArmor
	Defiant
	Competitive
	Opportunist

	Disguise
	IceFace
	Sturdy
	AngerPoint
	Justified
	WeakArmor
	Stamina
	WaterCompaction
	SteamEngine
	ThermalExchange
	Electromorphosis
	WindPower
	CottonDown
	Berserk
	AngerShell
	Multiscale

	Limber
	Insomnia
	VitalSpirit
	SweetVeil
	Immunity
	PastelVeil
	WaterVeil
	WaterBubble
	MagmaArmor
	Comatose
	PurifyingSalt
	LeafGuard
	FlowerVeil
	AromaVeil
	ShieldDust

	MoldBreaker
	Teravolt
	Turboblaze

	Gluttony
	Ripen
	CheekPouch
	Receiver
	PowerOfAlchemy
	SoulHeart
	Symbiosis

	Levitate
	ThickFat
	Adaptability
	Guts
	HugePower
	PurePower
	Prankster
	GaleWings
	Triage
	VoltAbsorb
	WaterAbsorb
	FlashFire
	SapSipper
	LightningRod
	StormDrain
	MotorDrive
	EarthEater
	WellBakedBody
	Infiltrator
	MagicGuard
	Unaware

	numAbilities
)

type auraKind uint8

const (
	auraNone auraKind = iota
	auraCloudNine
	auraSwordOfRuin
	auraBeadsOfRuin
	auraTabletsOfRuin
	auraVesselOfRuin
	auraFriendGuard
	auraPowerSpot
	auraSteelySpirit
	auraBattery
	auraNeutralizingGas
)

// abilityTrait is the dispatch entry of one ability. Standing field effects
// (weather, terrain, aura) are added and removed symmetrically by
// AddAbilityFieldEffect and RemoveAbilityFieldEffect.
type abilityTrait struct {
	name    string
	weather Weather
	terrain Terrain
	aura    auraKind
	// noCopy excludes the ability from Receiver and Power of Alchemy.
	noCopy bool
	// breaker ignores the target's ability when attacking.
	breaker bool
	// absorbs is the attacking type the ability grants immunity to.
	absorbs dex.Type
}

var abilityTraits = [numAbilities]abilityTrait{
	AbilityNone:  {name: ""},
	AbilityOther: {name: "(other)"},

	Drought:         {name: "Drought", weather: Sun},
	Drizzle:         {name: "Drizzle", weather: Rain},
	SandStream:      {name: "Sand Stream", weather: Sand},
	SnowWarning:     {name: "Snow Warning", weather: Snow},
	OrichalcumPulse: {name: "Orichalcum Pulse", weather: Sun},
	ElectricSurge:   {name: "Electric Surge", terrain: ElectricTerrain},
	GrassySurge:     {name: "Grassy Surge", terrain: GrassyTerrain},
	MistySurge:      {name: "Misty Surge", terrain: MistyTerrain},
	PsychicSurge:    {name: "Psychic Surge", terrain: PsychicTerrain},
	HadronEngine:    {name: "Hadron Engine", terrain: ElectricTerrain},
	SeedSower:       {name: "Seed Sower"},
	SandSpit:        {name: "Sand Spit"},
	CloudNine:       {name: "Cloud Nine", aura: auraCloudNine},
	AirLock:         {name: "Air Lock", aura: auraCloudNine},
	SwordOfRuin:     {name: "Sword of Ruin", aura: auraSwordOfRuin},
	BeadsOfRuin:     {name: "Beads of Ruin", aura: auraBeadsOfRuin},
	TabletsOfRuin:   {name: "Tablets of Ruin", aura: auraTabletsOfRuin},
	VesselOfRuin:    {name: "Vessel of Ruin", aura: auraVesselOfRuin},
	FriendGuard:     {name: "Friend Guard", aura: auraFriendGuard},
	PowerSpot:       {name: "Power Spot", aura: auraPowerSpot},
	SteelySpirit:    {name: "Steely Spirit", aura: auraSteelySpirit},
	Battery:         {name: "Battery", aura: auraBattery},
	NeutralizingGas: {name: "Neutralizing Gas", aura: auraNeutralizingGas, noCopy: true},

	Protosynthesis: {name: "Protosynthesis", noCopy: true},
	QuarkDrive:     {name: "Quark Drive", noCopy: true},
	Unburden:       {name: "Unburden"},
	Chlorophyll:    {name: "Chlorophyll"},
	SwiftSwim:      {name: "Swift Swim"},
	SandRush:       {name: "Sand Rush"},
	SlushRush:      {name: "Slush Rush"},
	SurgeSurfer:    {name: "Surge Surfer"},
	QuickFeet:      {name: "Quick Feet"},
	SlowStart:      {name: "Slow Start"},
	Simple:         {name: "Simple"},
	Contrary:       {name: "Contrary"},

	Intimidate:      {name: "Intimidate"},
	Download:        {name: "Download"},
	IntrepidSword:   {name: "Intrepid Sword"},
	DauntlessShield: {name: "Dauntless Shield"},
	SupersweetSyrup: {name: "Supersweet Syrup"},
	Costar:          {name: "Costar"},
	ScreenCleaner:   {name: "Screen Cleaner"},
	CuriousMedicine: {name: "Curious Medicine"},
	SupremeOverlord: {name: "Supreme Overlord"},
	Unnerve:         {name: "Unnerve"},
	AsOne:           {name: "As One", noCopy: true},

	ClearBody:     {name: "Clear Body"},
	WhiteSmoke:    {name: "White Smoke"},
	FullMetalBody: {name: "Full Metal Body"},
	HyperCutter:   {name: "Hyper Cutter"},
	BigPecks:      {name: "Big Pecks"},
	KeenEye:       {name: "Keen Eye"},
	MindsEye:      {name: "Mind's Eye"},
	InnerFocus:    {name: "Inner Focus"},
	Oblivious:     {name: "Oblivious"},
	OwnTempo:      {name: "Own Tempo"},
	Scrappy:       {name: "Scrappy"},
	GuardDog:      {name: "Guard Dog"},
	Rattled:       {name: "Rattled"},
	MirrorArmor:   {name: "Mirror Armor"},
	Defiant:       {name: "Defiant"},
	Competitive:   {name: "Competitive"},
	Opportunist:   {name: "Opportunist"},

	Disguise:         {name: "Disguise", noCopy: true},
	IceFace:          {name: "Ice Face", noCopy: true},
	Sturdy:           {name: "Sturdy"},
	AngerPoint:       {name: "Anger Point"},
	Justified:        {name: "Justified"},
	WeakArmor:        {name: "Weak Armor"},
	Stamina:          {name: "Stamina"},
	WaterCompaction:  {name: "Water Compaction"},
	SteamEngine:      {name: "Steam Engine"},
	ThermalExchange:  {name: "Thermal Exchange"},
	Electromorphosis: {name: "Electromorphosis"},
	WindPower:        {name: "Wind Power"},
	CottonDown:       {name: "Cotton Down"},
	Berserk:          {name: "Berserk"},
	AngerShell:       {name: "Anger Shell"},
	Multiscale:       {name: "Multiscale"},

	Limber:        {name: "Limber"},
	Insomnia:      {name: "Insomnia"},
	VitalSpirit:   {name: "Vital Spirit"},
	SweetVeil:     {name: "Sweet Veil"},
	Immunity:      {name: "Immunity"},
	PastelVeil:    {name: "Pastel Veil"},
	WaterVeil:     {name: "Water Veil"},
	WaterBubble:   {name: "Water Bubble"},
	MagmaArmor:    {name: "Magma Armor"},
	Comatose:      {name: "Comatose", noCopy: true},
	PurifyingSalt: {name: "Purifying Salt"},
	LeafGuard:     {name: "Leaf Guard"},
	FlowerVeil:    {name: "Flower Veil"},
	AromaVeil:     {name: "Aroma Veil"},
	ShieldDust:    {name: "Shield Dust"},

	MoldBreaker: {name: "Mold Breaker", breaker: true},
	Teravolt:    {name: "Teravolt", breaker: true},
	Turboblaze:  {name: "Turboblaze", breaker: true},

	Gluttony:       {name: "Gluttony"},
	Ripen:          {name: "Ripen"},
	CheekPouch:     {name: "Cheek Pouch"},
	Receiver:       {name: "Receiver", noCopy: true},
	PowerOfAlchemy: {name: "Power of Alchemy", noCopy: true},
	SoulHeart:      {name: "Soul-Heart"},
	Symbiosis:      {name: "Symbiosis"},

	Levitate:      {name: "Levitate"},
	ThickFat:      {name: "Thick Fat"},
	Adaptability:  {name: "Adaptability"},
	Guts:          {name: "Guts"},
	HugePower:     {name: "Huge Power"},
	PurePower:     {name: "Pure Power"},
	Prankster:     {name: "Prankster"},
	GaleWings:     {name: "Gale Wings"},
	Triage:        {name: "Triage"},
	VoltAbsorb:    {name: "Volt Absorb", absorbs: dex.TypeElectric},
	WaterAbsorb:   {name: "Water Absorb", absorbs: dex.TypeWater},
	FlashFire:     {name: "Flash Fire", absorbs: dex.TypeFire},
	SapSipper:     {name: "Sap Sipper", absorbs: dex.TypeGrass},
	LightningRod:  {name: "Lightning Rod", absorbs: dex.TypeElectric},
	StormDrain:    {name: "Storm Drain", absorbs: dex.TypeWater},
	MotorDrive:    {name: "Motor Drive", absorbs: dex.TypeElectric},
	EarthEater:    {name: "Earth Eater", absorbs: dex.TypeGround},
	WellBakedBody: {name: "Well-Baked Body", absorbs: dex.TypeFire},
	Infiltrator:   {name: "Infiltrator"},
	MagicGuard:    {name: "Magic Guard"},
	Unaware:       {name: "Unaware"},
}

var abilitiesByID = func() map[string]Ability {
	m := make(map[string]Ability, numAbilities)
	for a := AbilityOther + 1; a < numAbilities; a++ {
		m[dex.ID(abilityTraits[a].name)] = a
	}
	return m
}()

// ParseAbility resolves an ability name. The empty name is AbilityNone and
// every unknown name is AbilityOther.
func ParseAbility(name string) Ability {
	id := dex.ID(name)
	if id == "" {
		return AbilityNone
	}
	if a, ok := abilitiesByID[id]; ok {
		return a
	}
	return AbilityOther
}

func (a Ability) String() string {
	if a >= numAbilities {
		return abilityTraits[AbilityOther].name
	}
	return abilityTraits[a].name
}

func (a Ability) trait() abilityTrait {
	if a >= numAbilities {
		return abilityTraits[AbilityOther]
	}
	return abilityTraits[a]
}

// Breaker reports whether the ability makes its holder's attacks ignore the
// target's ability.
func (a Ability) Breaker() bool { return a.trait().breaker }

// Absorbs returns the attacking type the ability grants immunity to, or
// dex.TypeNone.
func (a Ability) Absorbs() dex.Type { return a.trait().absorbs }

// Copyable reports whether Receiver and Power of Alchemy may take the ability.
func (a Ability) Copyable() bool { return a > AbilityOther && !a.trait().noCopy }
