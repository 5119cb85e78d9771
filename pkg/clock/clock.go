package clock

import (
	"fmt"
	"time"
)

// Clock отдаёт текущее время в часовом поясе барбершопа
type Clock interface {
	Now() time.Time
}

// Zoned реальные часы, привязанные к фиксированному поясу
type Zoned struct {
	loc *time.Location
}

// New создает часы для указанного пояса
func New(loc *time.Location) *Zoned {
	return &Zoned{loc: loc}
}

// NewFixedOffset создает часы для пояса со смещением offsetHours от UTC (например, -5 для Колумбии)
func NewFixedOffset(offsetHours int) *Zoned {
	return New(FixedZone(offsetHours))
}

// Now возвращает текущее время в поясе барбершопа
func (c *Zoned) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location возвращает пояс часов
func (c *Zoned) Location() *time.Location {
	return c.loc
}

// FixedZone строит пояс без перехода на летнее время
func FixedZone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600)
}

// Fixed часы, которые всегда показывают одно и то же время (для тестов)
type Fixed struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (f Fixed) Now() time.Time {
	return f.At
}
