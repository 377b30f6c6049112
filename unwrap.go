// unwrap.go — traversal over single- and multi-wrapped errors.
//
// A parse failure can be the cause of another: a sub-parser that works on an
// embedded document fails, and the outer parser reports its own *Error with
// the inner one as cause. Walk lets FramesOf see frames at every level.
//
// Design notes:
//   - errors.Join returns an error with Unwrap() []error; errors.Unwrap only
//     calls Unwrap() error, so traversal handles BOTH forms.
//   - map[error] is not a safe "seen" set: non-comparable dynamic types panic as
//     map keys. Comparable dynamics go in seenErr, pointers by address in
//     seenPtr; anything else is treated as acyclic and bounded by depth.
package parsectx

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

func isComparable(err error) bool {
	return err != nil && reflect.TypeOf(err).Comparable()
}

func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen returns true if err was newly marked, false if already seen.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if isComparable(err) {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
	}
	return true
}

// Walk visits each distinct node of err's unwrap graph in pre-order (a node
// before its children, children left to right). It stops when visit returns
// false. Safe on cycles; nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && markSeen(c, seenErr, seenPtr) {
				stack = append(stack, c)
			}
		}
	}
}

// Root returns the first leaf of err's unwrap graph (deepest along the first
// path). For a parse failure with a foreign cause this is the foreign error.
func Root(err error) error {
	var root error
	Walk(err, func(e error) bool {
		root = e
		switch u := e.(type) {
		case multiUnwrapper:
			for _, c := range u.Unwrap() {
				if c != nil {
					return true
				}
			}
		case singleUnwrapper:
			if u.Unwrap() != nil {
				return true
			}
		}
		return false
	})
	return root
}
