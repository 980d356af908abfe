// Package voice implements the OPL voice pool: a fixed arena of Voice
// values (9 voices for an OPL2 chip, 18 for OPL3) partitioned between a
// free list and an allocated list. Both lists are singly linked through
// an index-based Next field rather than real pointers — an arena+index
// design matching the teacher's preference for flat, GC-friendly arrays
// over pointer graphs (internal/ppu's OAM table, internal/cpu's register
// file) instead of the original's C linked list of heap-allocated voices.
package voice

import (
	"oplmidi/internal/genmidi"
)

// none is the sentinel "no next/no channel" index, matching NULL in the
// original driver's pointer fields.
const none = -1

// operatorOffsets gives the operator register offsets for each of the
// nine channel slots within one OPL bank: operatorOffsets[0] is the
// modulator offset per channel, operatorOffsets[1] is the carrier
// offset. This duplicates oplreg.VoiceOperators (which oplsynth also
// uses directly against register writes); it is kept here too, rather
// than imported, so the voice pool does not import oplreg and oplreg's
// Programmer can in turn import voice without an import cycle.
var operatorOffsets = [2][9]int{
	{0x00, 0x01, 0x02, 0x08, 0x09, 0x0a, 0x10, 0x11, 0x12},
	{0x03, 0x04, 0x05, 0x0b, 0x0c, 0x0d, 0x13, 0x14, 0x15},
}

// DriverVersion selects which of the four historical voice-stealing
// policies is active. Declaration order matches the original driver's
// opl_driver_ver_t enum, which a couple of comparisons (< opl_doom_1_9,
// >= opl_doom1_1_666) depend on for ordering, not just equality.
type DriverVersion int

const (
	DriverBeta DriverVersion = iota
	DriverDoom1v1_666
	DriverDoom2v1_666
	DriverDoom1v9 // default
)

// Voice is one OPL hardware voice slot.
type Voice struct {
	Index int // 0-8, position within its bank
	Op1   int // modulator operator register offset
	Op2   int // carrier operator register offset
	Bank  int // 0 or 1 (OR'd with oplreg.BankOffset for bank 1)

	Instrument      *genmidi.Instrument
	InstrumentVoice int // which of Instrument.Voices this slot plays
	Percussion      bool // true if Instrument came from the bank's percussion range

	Channel int // index into the owning channel table, none if free
	Key     uint8
	Note    uint8
	Freq    uint16

	NoteVolume uint8
	RegVolume  int // cached register value; 999 forces a rewrite on next set
	RegPan     uint8
	Priority   int

	next int // index of the next voice in whichever list owns this slot
}

// Pool is the fixed arena of voices plus the free/allocated list heads.
type Pool struct {
	driverVersion DriverVersion
	voices        []Voice

	freeHead, freeTail   int
	allocHead, allocTail int
	allocCount           int
}

// NewPool builds a pool of n voices (9 for OPL2, 18 for OPL3), all
// initially free, with Op1/Op2/Bank assigned the same way
// original_source's InitVoices does.
func NewPool(n int, driverVersion DriverVersion) *Pool {
	p := &Pool{
		driverVersion: driverVersion,
		voices:        make([]Voice, n),
		freeHead:      none, freeTail: none,
		allocHead: none, allocTail: none,
	}
	for i := range p.voices {
		withinBank := i % 9
		p.voices[i] = Voice{
			Index:   withinBank,
			Op1:     operatorOffsets[0][withinBank],
			Op2:     operatorOffsets[1][withinBank],
			Bank:    i / 9,
			Channel: none,
			next:    none,
		}
		p.pushFree(i)
	}
	return p
}

func (p *Pool) pushFree(idx int) {
	p.voices[idx].next = none
	if p.freeTail == none {
		p.freeHead, p.freeTail = idx, idx
		return
	}
	p.voices[p.freeTail].next = idx
	p.freeTail = idx
}

func (p *Pool) pushAlloc(idx int) {
	p.voices[idx].next = none
	if p.allocTail == none {
		p.allocHead, p.allocTail = idx, idx
	} else {
		p.voices[p.allocTail].next = idx
		p.allocTail = idx
	}
	p.allocCount++
}

// removeFromAlloc splices idx out of the allocated list by linear scan,
// mirroring RemoveVoiceFromAllocedList's pointer-chasing splice.
func (p *Pool) removeFromAlloc(idx int) {
	if p.allocHead == idx {
		p.allocHead = p.voices[idx].next
		if p.allocTail == idx {
			p.allocTail = none
		}
		p.allocCount--
		return
	}
	prev := p.allocHead
	for prev != none && p.voices[prev].next != idx {
		prev = p.voices[prev].next
	}
	if prev == none {
		return // not in the list
	}
	p.voices[prev].next = p.voices[idx].next
	if p.allocTail == idx {
		p.allocTail = prev
	}
	p.allocCount--
}

// GetFree pops the head of the free list and appends it to the tail of
// the allocated list, mirroring GetFreeVoice. ok is false if no voice is
// free.
func (p *Pool) GetFree() (idx int, ok bool) {
	if p.freeHead == none {
		return 0, false
	}
	idx = p.freeHead
	p.freeHead = p.voices[idx].next
	if p.freeHead == none {
		p.freeTail = none
	}
	p.pushAlloc(idx)
	return idx, true
}

// Release returns voice idx to the free list, clearing its channel/note
// binding. If idx is playing the second voice of a double-voice
// instrument under a pre-1.9 driver, its sibling (the next voice in
// allocation order at the time of release) is recursively released too,
// mirroring ReleaseVoice's opl_drv_ver < opl_doom_1_9 sibling-release
// quirk. keyOff is called (with the sibling's index, if any) before each
// voice is actually freed, so callers can issue the matching OPL
// key-off register write first.
func (p *Pool) Release(idx int, keyOff func(idx int)) {
	v := &p.voices[idx]
	doubleVoice := v.InstrumentVoice != 0
	next := v.next // captured before removal, per the original's ordering

	v.Channel = none
	v.Note = 0

	p.removeFromAlloc(idx)
	p.pushFree(idx)

	if next != none && doubleVoice && p.driverVersion < DriverDoom1v9 {
		if keyOff != nil {
			keyOff(next)
		}
		p.Release(next, keyOff)
	}
}

// TryAlloc allocates the specific voice idx if it is currently free,
// splicing it out of the free list by linear scan rather than taking
// whatever FIFO GetFree would return. The two-voice instrument pairing
// quirk uses this to prefer the bank-paired voice (same within-bank
// Index, opposite Bank) for an instrument's second OPL voice, matching
// the original driver's preference for stereo-detuned pairs over
// whatever the free list's natural order would hand out.
func (p *Pool) TryAlloc(idx int) bool {
	if p.voices[idx].Channel != none {
		return false
	}
	if p.freeHead == idx {
		p.freeHead = p.voices[idx].next
		if p.freeHead == none {
			p.freeTail = none
		}
	} else {
		prev := p.freeHead
		for prev != none && p.voices[prev].next != idx {
			prev = p.voices[prev].next
		}
		if prev == none {
			return false
		}
		p.voices[prev].next = p.voices[idx].next
		if p.freeTail == idx {
			p.freeTail = prev
		}
	}
	p.pushAlloc(idx)
	return true
}

// Voice returns a pointer to voice idx for direct field access/mutation.
func (p *Pool) Voice(idx int) *Voice { return &p.voices[idx] }

// AllocatedCount returns how many voices are currently allocated.
func (p *Pool) AllocatedCount() int { return p.allocCount }

// Len returns the total number of voices in the pool (9 or 18).
func (p *Pool) Len() int { return len(p.voices) }

// HasFree reports whether at least one voice is free.
func (p *Pool) HasFree() bool { return p.freeHead != none }

// Allocated calls fn for every allocated voice index, in allocation
// order (oldest first), stopping early if fn returns false. fn must not
// release any voice from the pool; use ReleaseMatching for that.
func (p *Pool) Allocated(fn func(idx int) bool) {
	cur := p.allocHead
	for cur != none {
		next := p.voices[cur].next
		if !fn(cur) {
			return
		}
		cur = next
	}
}

// AllocatedIndices returns a snapshot slice of every allocated voice
// index, oldest first. Victim-selection policies in the allocator package
// use this instead of Allocated's callback form when they need to index
// back into the list by position (the doom2 policy's off-by-three scan
// prefix) or compare a candidate against the list's first entry.
func (p *Pool) AllocatedIndices() []int {
	out := make([]int, 0, p.allocCount)
	cur := p.allocHead
	for cur != none {
		out = append(out, cur)
		cur = p.voices[cur].next
	}
	return out
}

// ReleaseMatching scans the allocated list and releases every voice for
// which match returns true, calling keyOff on each one first. Because
// releasing a voice can also release its sibling (see Release's double-
// voice/pre-1.9 quirk), the scan restarts from the last non-matching
// voice after every release instead of advancing to a pre-captured next
// pointer — exactly the restart rule KeyOffEvent and AllNotesOff use in
// the original driver, which protects against continuing into a voice
// that a sibling release has already freed.
func (p *Pool) ReleaseMatching(match func(idx int) bool, keyOff func(idx int)) {
	prev := none
	cur := p.allocHead

	for cur != none {
		next := p.voices[cur].next

		if match(cur) {
			keyOff(cur)
			p.Release(cur, keyOff)

			if prev == none {
				cur = p.allocHead
			} else {
				cur = p.voices[prev].next
			}
			continue
		}

		prev = cur
		cur = next
	}
}
