package raid

// Weather is the global weather condition.
type Weather uint8

const (
	WeatherNone Weather = iota
	Sun
	Rain
	Sand
	Snow
)

var weatherNames = [...]string{"", "Sun", "Rain", "Sand", "Snow"}

func (w Weather) String() string { return weatherNames[w] }

// Terrain is the global terrain condition.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	ElectricTerrain
	GrassyTerrain
	MistyTerrain
	PsychicTerrain
)

var terrainNames = [...]string{"", "Electric", "Grassy", "Misty", "Psychic"}

func (t Terrain) String() string { return terrainNames[t] }

// Origin records what set a weather or terrain. Only OriginAura conditions
// are cleared when their last providing ability leaves play.
type Origin uint8

const (
	OriginNone Origin = iota
	// OriginAura is a standing ability aura such as Drought.
	OriginAura
	// OriginEffect is a move or a one-shot trigger such as Sand Spit.
	OriginEffect
)

// Field is the state shared by all five combatants.
type Field struct {
	Weather       Weather
	WeatherOrigin Origin
	Terrain       Terrain
	TerrainOrigin Origin

	TrickRoom  bool
	MagicRoom  bool
	WonderRoom bool
	Gravity    bool

	CloudNine       bool
	SwordOfRuin     bool
	BeadsOfRuin     bool
	TabletsOfRuin   bool
	VesselOfRuin    bool
	NeutralizingGas bool
}

// EffectiveWeather is the weather as seen by weather-dependent effects:
// suppressed while Cloud Nine or Air Lock is in play.
func (f *Field) EffectiveWeather() Weather {
	if f.CloudNine {
		return WeatherNone
	}
	return f.Weather
}

// Side indices into State.Sides.
const (
	BossSide   = 0
	RaiderSide = 1
)

// Side holds the conditions scoped to one side of the battle.
type Side struct {
	Reflect     bool
	LightScreen bool
	AuroraVeil  bool
	Mist        bool
	Safeguard   bool
	Tailwind    bool

	// Turns remaining on raid cheers; zero when inactive.
	AtkCheer int
	DefCheer int

	// Number of non-nullified holders of each ally-support ability.
	FriendGuards  int
	PowerSpots    int
	SteelySpirits int
	Batteries     int
}

// Scoped holds the per-combatant flags that single-target moves like
// Protect or Helping Hand set on exactly one combatant.
type Scoped struct {
	Protected   bool
	WideGuard   bool
	QuickGuard  bool
	HelpingHand bool
	Charged     bool
	// Endure marks the combatant as unable to faint during the current action.
	Endure bool
}
