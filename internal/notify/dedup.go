package notify

import (
	"container/list"
	"time"
)

type recentEntry struct {
	text string
	at   time.Time
}

// recentTexts maps message text to the last time it was accepted, ordered
// by recency. Once it grows past max entries the oldest are evicted until
// keep remain.
type recentTexts struct {
	order *list.List
	index map[string]*list.Element
	max   int
	keep  int
}

func newRecentTexts(max, keep int) *recentTexts {
	return &recentTexts{
		order: list.New(),
		index: make(map[string]*list.Element),
		max:   max,
		keep:  keep,
	}
}

func (r *recentTexts) lastSeen(text string) (time.Time, bool) {
	el, ok := r.index[text]
	if !ok {
		return time.Time{}, false
	}
	return el.Value.(*recentEntry).at, true
}

func (r *recentTexts) touch(text string, at time.Time) {
	if el, ok := r.index[text]; ok {
		el.Value.(*recentEntry).at = at
		r.order.MoveToBack(el)
	} else {
		r.index[text] = r.order.PushBack(&recentEntry{text: text, at: at})
	}
	if r.order.Len() > r.max {
		for r.order.Len() > r.keep {
			front := r.order.Front()
			delete(r.index, front.Value.(*recentEntry).text)
			r.order.Remove(front)
		}
	}
}

func (r *recentTexts) len() int { return r.order.Len() }
