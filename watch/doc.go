// Package watch wraps a priority map and reports its mutations on a channel.
//
// The core map deliberately has no callback hooks: invoking caller code from
// inside a sift operation would let a callback observe (or mutate) the map
// mid-repair. This package keeps the core free of that control flow by
// recording events after each completed operation instead.
//
// Basic usage:
//
//	inner := prioritymap.New[int, string, string]()
//	m := watch.New(inner, 16)
//
//	m.Set("a", "va", 1)
//	m.Pop()
//
//	for {
//	    select {
//	    case ev := <-m.Events():
//	        fmt.Printf("%s %s\n", ev.Op, ev.Key)
//	    default:
//	        return
//	    }
//	}
//
// Events are emitted only for operations that changed the map; a Pop on an
// empty map or a Remove of an absent key produces nothing. Sends never
// block: when the buffer is full the event is discarded and counted, and
// Dropped reports how many were lost.
//
// The wrapper adds no locking. Like the map itself it assumes a single
// writer; the events channel may be drained from another goroutine.
package watch
