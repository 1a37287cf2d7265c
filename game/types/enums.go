package types

// Biome is the active environmental modifier variant
type Biome int

const (
	BiomeNormal Biome = iota
	BiomeFire
	BiomeIce
	BiomeMagnetic
	BiomeToxic
)

// Biomes lists every variant in declaration order
var Biomes = [5]Biome{BiomeNormal, BiomeFire, BiomeIce, BiomeMagnetic, BiomeToxic}

var biomeNames = [...]string{"normal", "fire", "ice", "magnetic", "toxic"}

func (b Biome) String() string {
	if b < BiomeNormal || b > BiomeToxic {
		return "unknown"
	}
	return biomeNames[b]
}

// Difficulty selects a balance preset
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Extreme
)

var difficultyNames = [...]string{"easy", "normal", "hard", "extreme"}

func (d Difficulty) String() string {
	if d < Easy || d > Extreme {
		return "unknown"
	}
	return difficultyNames[d]
}

// Mode selects the rule set. Only Classic is simulated.
type Mode int

const (
	Classic Mode = iota
	TimeAttack
	Survival
)

var modeNames = [...]string{"classic", "time_attack", "survival"}

func (m Mode) String() string {
	if m < Classic || m > Survival {
		return "unknown"
	}
	return modeNames[m]
}
