package model

import "strconv"

type RoomID int

func (r RoomID) String() string { return strconv.Itoa(int(r)) }

// Interval is one occupied block as read from the source, "HH:MM" strings.
type Interval struct {
	Start string
	End   string
}

// ScheduleRow holds the cells of one source row picked through a resolved column mapping.
type ScheduleRow struct {
	Room     string
	Pavilion string
	Start    string
	End      string
}

type RoomSlots struct {
	Room      RoomID
	Intervals []Interval
}

// RoomSchedule has exactly one entry per whitelisted room, in whitelist order.
type RoomSchedule []RoomSlots

// NewRoomSchedule creates an empty schedule for the given rooms.
func NewRoomSchedule(rooms []RoomID) RoomSchedule {
	s := make(RoomSchedule, len(rooms))
	for i, r := range rooms {
		s[i] = RoomSlots{Room: r, Intervals: []Interval{}}
	}
	return s
}

// Index returns the row of the given room or -1 if it is not part of the schedule.
func (s RoomSchedule) Index(room RoomID) int {
	for i := range s {
		if s[i].Room == room {
			return i
		}
	}
	return -1
}

// Add appends an interval to the room's row. Returns false if the room is unknown.
func (s RoomSchedule) Add(room RoomID, in Interval) bool {
	i := s.Index(room)
	if i < 0 {
		return false
	}
	s[i].Intervals = append(s[i].Intervals, in)
	return true
}

// Rooms lists the room ids in row order.
func (s RoomSchedule) Rooms() []RoomID {
	rooms := make([]RoomID, len(s))
	for i := range s {
		rooms[i] = s[i].Room
	}
	return rooms
}

// Count returns the total number of intervals.
func (s RoomSchedule) Count() int {
	n := 0
	for i := range s {
		n += len(s[i].Intervals)
	}
	return n
}
