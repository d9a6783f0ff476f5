// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package session

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RecordWin registers a match win: the win streak grows and any loss streak
// is broken (its length is kept in PrevLossStreak for comeback detection).
func RecordWin(d *Data) {
	if d.LossStreak > 0 {
		d.PrevLossStreak = d.LossStreak
	}
	d.WinStreak++
	d.LossStreak = 0
	d.TotalWins++

	logrus.Debugf("recorded win: winStreak=%d, prevLossStreak=%d", d.WinStreak, d.PrevLossStreak)
}

// RecordLoss registers a match loss, the mirror of RecordWin. A loss also
// clears PrevLossStreak: the player is no longer coming back from anything.
func RecordLoss(d *Data) {
	d.LossStreak++
	d.WinStreak = 0
	d.PrevLossStreak = 0
	d.TotalLosses++

	logrus.Debugf("recorded loss: lossStreak=%d", d.LossStreak)
}

// StartSession marks a new play session as open. Starting while a session
// is already open simply restarts the clock for it.
func StartSession(d *Data, now time.Time) {
	d.SessionCount++
	d.SessionActive = true
	d.CurrentSessionStart = now

	logrus.Debugf("session started: count=%d", d.SessionCount)
}

// EndSession closes the open session and records its length and end time.
// Ending without an open session is a no-op.
func EndSession(d *Data, now time.Time) {
	if !d.SessionActive {
		logrus.Debugf("end session ignored: no session open")
		return
	}

	length := now.Sub(d.CurrentSessionStart)
	if length < 0 {
		length = 0
	}

	d.LastSessionLength = length
	d.LastSessionEnd = now
	d.SessionActive = false

	logrus.Debugf("session ended: length=%v", length)
}

// RecordQuit stores the quit classification for the session that just ended.
func RecordQuit(d *Data, kind QuitKind) {
	d.LastQuit = kind

	logrus.Debugf("recorded quit: kind=%s", kind)
}

// Reset returns the record to first-use defaults.
func Reset(d *Data) {
	*d = Data{}
}
