package runtime

import "errors"

// ErrCallOverflow signals the user-call recursion guard tripped
//.
var ErrCallOverflow = errors.New("runtime: call depth exceeded")

var errOverflow = ErrCallOverflow
