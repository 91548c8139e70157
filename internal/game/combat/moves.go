package combat

import (
	"github.com/cory-johannsen/raidcalc/internal/game/condition"
	"github.com/cory-johannsen/raidcalc/internal/game/dex"
	"github.com/cory-johannsen/raidcalc/internal/game/raid"
)

// cheerTurns is how long a raid cheer lasts.
const cheerTurns = 3

// moveEffect is the move-specific part of a move, run after its damage and
// secondary effects.
type moveEffect func(x *execution)

// moveEffects is keyed by dex.ID of the move name.
var moveEffects map[string]moveEffect

func init() {
	moveEffects = map[string]moveEffect{
		"sunnyday":        weatherMove(raid.Sun),
		"raindance":       weatherMove(raid.Rain),
		"sandstorm":       weatherMove(raid.Sand),
		"snowscape":       weatherMove(raid.Snow),
		"hail":            weatherMove(raid.Snow),
		"chillyreception": weatherMove(raid.Snow),

		"electricterrain": terrainMove(raid.ElectricTerrain),
		"grassyterrain":   terrainMove(raid.GrassyTerrain),
		"mistyterrain":    terrainMove(raid.MistyTerrain),
		"psychicterrain":  terrainMove(raid.PsychicTerrain),
		"steelroller":     terrainMove(raid.TerrainNone),
		"icespinner":      terrainMove(raid.TerrainNone),

		"trickroom":  func(x *execution) { toggleRoom(x, &x.s.Field.TrickRoom, "Trick Room") },
		"magicroom":  func(x *execution) { toggleRoom(x, &x.s.Field.MagicRoom, "Magic Room") },
		"wonderroom": func(x *execution) { toggleRoom(x, &x.s.Field.WonderRoom, "Wonder Room") },
		"gravity": func(x *execution) {
			x.s.Field.Gravity = true
			x.s.Flag(x.user, "Gravity intensified")
		},

		"reflect":     sideMove(func(sd *raid.Side) *bool { return &sd.Reflect }, "Reflect"),
		"lightscreen": sideMove(func(sd *raid.Side) *bool { return &sd.LightScreen }, "Light Screen"),
		"auroraveil": func(x *execution) {
			if x.s.Field.EffectiveWeather() == raid.Snow {
				sideMove(func(sd *raid.Side) *bool { return &sd.AuroraVeil }, "Aurora Veil")(x)
			}
		},
		"mist":      sideMove(func(sd *raid.Side) *bool { return &sd.Mist }, "Mist"),
		"safeguard": sideMove(func(sd *raid.Side) *bool { return &sd.Safeguard }, "Safeguard"),
		"tailwind":  sideMove(func(sd *raid.Side) *bool { return &sd.Tailwind }, "Tailwind"),

		"attackcheer": func(x *execution) {
			x.s.SideOf(x.user).AtkCheer = cheerTurns
			x.s.Flag(x.user, "%s cheered on its allies' attacks", x.userC().Role)
		},
		"defensecheer": func(x *execution) {
			x.s.SideOf(x.user).DefCheer = cheerTurns
			x.s.Flag(x.user, "%s cheered on its allies' defenses", x.userC().Role)
		},
		"healcheer": healCheer,

		"brickbreak":   breakScreens,
		"psychicfangs": breakScreens,
		"ragingbull":   breakScreens,
		"defog": func(x *execution) {
			breakScreens(x)
			if x.s.Field.Terrain != raid.TerrainNone {
				x.s.ApplyTerrain(x.user, raid.TerrainNone, raid.OriginEffect)
			}
		},

		"helpinghand":    func(x *execution) { scoped(x, x.target, func(sc *raid.Scoped) { sc.HelpingHand = true }) },
		"charge":         func(x *execution) { scoped(x, x.user, func(sc *raid.Scoped) { sc.Charged = true }) },
		"endure":         func(x *execution) { scoped(x, x.user, func(sc *raid.Scoped) { sc.Endure = true }) },
		"wideguard":      func(x *execution) { scoped(x, x.user, func(sc *raid.Scoped) { sc.WideGuard = true }) },
		"quickguard":     func(x *execution) { scoped(x, x.user, func(sc *raid.Scoped) { sc.QuickGuard = true }) },
		"protect":        protect,
		"detect":         protect,
		"spikyshield":    protect,
		"banefulbunker":  protect,
		"silktrap":       protect,
		"burningbulwark": protect,
		"kingsshield":    protect,
		"obstruct":       protect,

		"haze":      func(x *execution) { resetBoosts(x, 0, 1, 2, 3, 4) },
		"clearsmog": func(x *execution) { resetBoosts(x, x.targets...) },
		"psychup": func(x *execution) {
			x.userC().Boosts = x.s.Get(x.target).Boosts
		},
		"powerswap": func(x *execution) { swapBoosts(x, dex.Atk, dex.SpA) },
		"guardswap": func(x *execution) { swapBoosts(x, dex.Def, dex.SpD) },
		"heartswap": func(x *execution) { swapBoosts(x, raid.BoostStats[:]...) },
		"bellydrum": func(x *execution) { payHPForBoost(x, 2, raid.Boosts{dex.Atk: 12}) },
		"filletaway": func(x *execution) {
			payHPForBoost(x, 2, raid.Boosts{dex.Atk: 2, dex.SpA: 2, dex.Spe: 2})
		},
		"substitute":     substitute,
		"painsplit":      painSplit,
		"superfang":      halveHP,
		"ruination":      halveHP,
		"naturesmadness": halveHP,
		"rest":           rest,
		"toxic": func(x *execution) {
			x.s.ApplyStatus(x.target, raid.Toxic, raid.Affliction{SourceID: x.user, IgnoreAbility: x.breaker})
		},

		"skillswap": func(x *execution) {
			mine, theirs := x.userC().Ability, x.s.Get(x.target).Ability
			x.s.ChangeAbility(x.user, theirs)
			x.s.ChangeAbility(x.target, mine)
		},
		"roleplay":    func(x *execution) { x.s.ChangeAbility(x.user, x.s.Get(x.target).Ability) },
		"entrainment": func(x *execution) { x.s.ChangeAbility(x.target, x.userC().Ability) },
		"worryseed":   func(x *execution) { x.s.ChangeAbility(x.target, raid.Insomnia) },
		"simplebeam":  func(x *execution) { x.s.ChangeAbility(x.target, raid.Simple) },
		"gastroacid":  func(x *execution) { x.s.NullifyAbility(x.target) },

		"knockoff":   func(x *execution) { loseTargetItem(x, false) },
		"incinerate": func(x *execution) { loseTargetItem(x, true) },
		"trick":      swapItems,
		"switcheroo": swapItems,
		"bugbite":    stealBerry,
		"pluck":      stealBerry,
		"fling":      fling,

		"taunt":     volatileMove(condition.Taunt),
		"encore":    volatileMove(condition.Encore),
		"disable":   volatileMove(condition.Disable),
		"torment":   volatileMove(condition.Torment),
		"attract":   volatileMove(condition.Infatuation),
		"yawn":      volatileMove(condition.Yawn),
		"saltcure":  volatileMove(condition.SaltCure),
		"syrupbomb": volatileMove(condition.SyrupBomb),
		"ingrain": func(x *execution) {
			x.s.ApplyVolatileStatus(x.user, condition.Ingrain, raid.Affliction{SourceID: x.user})
		},
	}
}

func weatherMove(w raid.Weather) moveEffect {
	return func(x *execution) { x.s.ApplyWeather(x.user, w, raid.OriginEffect) }
}

func terrainMove(t raid.Terrain) moveEffect {
	return func(x *execution) {
		if t == raid.TerrainNone && x.dealt == 0 {
			return
		}
		x.s.ApplyTerrain(x.user, t, raid.OriginEffect)
	}
}

func toggleRoom(x *execution, room *bool, name string) {
	*room = !*room
	if *room {
		x.s.Flag(x.user, "%s twisted the dimensions", name)
	} else {
		x.s.Flag(x.user, "%s wore off", name)
	}
	if room == &x.s.Field.MagicRoom {
		for i := range x.s.Combatants {
			x.s.ApplyDamage(i, 0, raid.Indirect)
		}
	}
}

func sideMove(field func(*raid.Side) *bool, name string) moveEffect {
	return func(x *execution) {
		flag := field(x.s.SideOf(x.user))
		if *flag {
			return
		}
		*flag = true
		x.s.Flag(x.user, "%s protected %s's side", name, x.userC().Role)
	}
}

func healCheer(x *execution) {
	for _, id := range append([]int{x.user}, x.s.Allies(x.user)...) {
		c := x.s.Get(id)
		if c.Fainted() {
			continue
		}
		x.s.Heal(id, c.MaxHP()/5)
		if c.Status != raid.StatusNone {
			c.Status = raid.StatusNone
			c.SleepTurns = 0
			x.s.Flag(id, "%s was cured of its status", c.Role)
		}
	}
}

func breakScreens(x *execution) {
	side := x.s.OpposingSide(x.user)
	if side.Reflect || side.LightScreen || side.AuroraVeil {
		side.Reflect, side.LightScreen, side.AuroraVeil = false, false, false
		x.s.Flag(x.user, "%s shattered the screens", x.userC().Role)
	}
}

func scoped(x *execution, id int, set func(*raid.Scoped)) {
	set(&x.s.Get(id).Scoped)
}

func protect(x *execution) {
	x.userC().Scoped.Protected = true
	x.s.Flag(x.user, "%s protected itself", x.userC().Role)
}

func resetBoosts(x *execution, ids ...int) {
	for _, id := range ids {
		x.s.Get(id).Boosts = raid.Boosts{}
	}
	x.s.Flag(x.user, "Stat changes were eliminated")
}

func swapBoosts(x *execution, stats ...dex.Stat) {
	u, t := x.userC(), x.s.Get(x.target)
	for _, st := range stats {
		u.Boosts[st], t.Boosts[st] = t.Boosts[st], u.Boosts[st]
	}
}

// payHPForBoost costs 1/div of max HP and applies deltas, failing when the
// user cannot afford it.
func payHPForBoost(x *execution, div int, deltas raid.Boosts) {
	c := x.userC()
	cost := c.MaxHP() / div
	if c.HP <= cost {
		x.s.Flag(x.user, "But it failed")
		return
	}
	before := c.HP
	x.s.ApplyDamage(x.user, cost, raid.Indirect)
	x.res.Damage[x.user] += before - c.HP
	x.s.ApplyStatChange(x.user, deltas, raid.StatChange{Copyable: true, SourceID: x.user})
}

func substitute(x *execution) {
	c := x.userC()
	cost := c.MaxHP() / 4
	if c.SubstituteHP > 0 || c.HP <= cost {
		x.s.Flag(x.user, "But it failed")
		return
	}
	before := c.HP
	x.s.ApplyDamage(x.user, cost, raid.Indirect)
	x.res.Damage[x.user] += before - c.HP
	c.SubstituteHP = cost
	x.s.Flag(x.user, "%s put up a substitute", c.Role)
}

func painSplit(x *execution) {
	u, t := x.userC(), x.s.Get(x.target)
	avg := (u.HP + t.HP) / 2
	u.HP = min(u.MaxHP(), avg)
	t.HP = min(t.MaxHP(), avg)
	x.s.Flag(x.user, "The battlers shared their pain")
}

func halveHP(x *execution) {
	for _, id := range x.targets {
		if id == x.user {
			continue
		}
		t := x.s.Get(id)
		before := t.HP
		x.s.ApplyDamage(id, max(1, t.HP/2), raid.Hit{AttackerID: x.user, Move: x.move, Hits: 1, Effectiveness: 1})
		x.res.Damage[id] += before - t.HP
		x.dealt += before - t.HP
	}
}

func rest(x *execution) {
	c := x.userC()
	if c.HP == c.MaxHP() || c.HasAbility(raid.Insomnia) || c.HasAbility(raid.VitalSpirit) {
		x.s.Flag(x.user, "But it failed")
		return
	}
	c.Status = raid.StatusNone
	if x.s.ApplyStatus(x.user, raid.Sleep, raid.Affliction{SourceID: x.user}) {
		c.SleepTurns = 2
		x.s.Heal(x.user, c.MaxHP())
	}
}

func volatileMove(k condition.Kind) moveEffect {
	return func(x *execution) {
		for _, id := range x.targets {
			if id == x.user {
				continue
			}
			x.s.ApplyVolatileStatus(id, k, raid.Affliction{
				SourceID:      x.user,
				IgnoreAbility: x.breaker,
				Move:          x.s.Get(id).LastMove,
			})
		}
	}
}

func loseTargetItem(x *execution, berriesOnly bool) {
	t := x.s.Get(x.target)
	if t.Fainted() && !berriesOnly || t.Item == raid.ItemNone || berriesOnly && !t.Item.IsBerry() {
		return
	}
	x.s.Flag(x.target, "%s lost its %s", t.Role, t.Item)
	x.s.LoseItem(x.target, false, false)
}

func swapItems(x *execution) {
	u, t := x.userC(), x.s.Get(x.target)
	mine, theirs := u.Item, t.Item
	if mine == raid.ItemNone && theirs == raid.ItemNone {
		return
	}
	x.s.LoseItem(x.user, false, true)
	x.s.LoseItem(x.target, false, true)
	if theirs != raid.ItemNone {
		x.s.ReceiveItem(x.user, theirs)
	}
	if mine != raid.ItemNone {
		x.s.ReceiveItem(x.target, mine)
	}
}

func stealBerry(x *execution) {
	t := x.s.Get(x.target)
	berry := t.Item
	if !berry.IsBerry() || x.userC().Fainted() {
		return
	}
	x.s.LoseItem(x.target, false, false)
	x.s.Flag(x.user, "%s stole and ate %s's %s", x.userC().Role, t.Role, berry)
	x.s.ConsumeItem(x.user, berry, false, false)
}

// fling throws the user's item: berries and herbs take effect on the target
// and orbs inflict their status.
func fling(x *execution) {
	item := x.userC().Item
	if item == raid.ItemNone || x.s.Field.MagicRoom {
		return
	}
	x.s.Flag(x.user, "%s flung its %s", x.userC().Role, item)
	x.s.LoseItem(x.user, true, false)
	if st := item.Orb(); st != raid.StatusNone {
		x.s.ApplyStatus(x.target, st, raid.Affliction{SourceID: x.user, IgnoreAbility: x.breaker})
		return
	}
	flingable := item.IsBerry() || item == raid.WhiteHerb || item == raid.MentalHerb
	if flingable && !x.s.Get(x.target).Fainted() {
		x.s.ConsumeItem(x.target, item, false, false)
	}
}
