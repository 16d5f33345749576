// internal/event/types.go
package event

const (
	CreepKilled   EventType = "CreepKilled"   // Data: CreepData
	CreepLeaked   EventType = "CreepLeaked"   // Data: CreepData
	TowerBuilt    EventType = "TowerBuilt"    // Data: TowerData
	TowerUpgraded EventType = "TowerUpgraded" // Data: TowerData
	TowerSold     EventType = "TowerSold"     // Data: TowerData
	WaveStarted   EventType = "WaveStarted"   // Data: WaveData
	WaveCleared   EventType = "WaveCleared"   // Data: WaveData
	GameEnded     EventType = "GameEnded"     // Data: GameEndData
)

type CreepData struct {
	ID    uint64
	Type  string
	Worth int
}

type TowerData struct {
	ID    uint64
	Type  string
	Level int
	Cash  int // cash after the operation
}

type WaveData struct {
	Number int // 1-based
	Total  int
}

type GameEndData struct {
	Score int
	Won   bool
}
