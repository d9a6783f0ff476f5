// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package session

import (
	"time"
)

// QuitKind classifies how the player's last session ended.
type QuitKind string

const (
	// QuitNormal is a regular, deliberate exit.
	QuitNormal QuitKind = "normal"
	// QuitMidPlay is an exit in the middle of active play.
	QuitMidPlay QuitKind = "mid_play"
	// QuitRageQuit is an abrupt exit right after a frustrating moment.
	QuitRageQuit QuitKind = "rage_quit"
)

// Data is the per-player session/behavior record consumed by difficulty
// modifiers. It is mutated by the recording functions in this package and
// persisted by the data provider.
type Data struct {
	// WinStreak and LossStreak are mutually exclusive: incrementing one
	// resets the other to zero.
	WinStreak  int `json:"winStreak"`
	LossStreak int `json:"lossStreak"`

	// PrevLossStreak holds the length of the loss streak that the current
	// win streak broke, so comeback behavior can be detected.
	PrevLossStreak int `json:"prevLossStreak"`

	TotalWins   int `json:"totalWins"`
	TotalLosses int `json:"totalLosses"`

	SessionCount        int       `json:"sessionCount"`
	SessionActive       bool      `json:"sessionActive"`
	CurrentSessionStart time.Time `json:"currentSessionStart"`

	LastSessionLength time.Duration `json:"lastSessionLength"`
	LastSessionEnd    time.Time     `json:"lastSessionEnd"`

	// LastQuit is empty until the first recorded quit.
	LastQuit QuitKind `json:"lastQuit"`
}

// NewData returns a zeroed record for a player seen for the first time.
func NewData() *Data {
	return &Data{}
}

// TotalGames returns the number of recorded match outcomes.
func (d *Data) TotalGames() int {
	return d.TotalWins + d.TotalLosses
}

// WinRate returns the fraction of recorded games the player won, or 0 when
// nothing has been recorded yet.
func (d *Data) WinRate() float64 {
	total := d.TotalGames()
	if total == 0 {
		return 0
	}
	return float64(d.TotalWins) / float64(total)
}
