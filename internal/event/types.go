// internal/event/types.go
package event

const (
	DoorToggled    EventType = "DoorToggled"    // Дверь открыта или закрыта, Data: DoorData
	AttackStarted  EventType = "AttackStarted"  // Монстр вышел, Data: component.Side
	AttackRepelled EventType = "AttackRepelled" // Атака отбита, Data: счёт (int)
	PowerDepleted  EventType = "PowerDepleted"  // Энергия кончилась
	MonsterBreach  EventType = "MonsterBreach"  // Монстр прошёл в открытую дверь
	SessionReset   EventType = "SessionReset"   // Новая сессия
)
