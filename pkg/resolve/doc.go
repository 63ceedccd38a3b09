// Package resolve decides, for each declared parameter, whether its value
// comes from the invocation, from the declared default, or from a question
// asked at the terminal.
//
// # Resolution
//
// Engine.Resolve reads the raw option value and checks whether it is
// provided: a scalar is provided when it is not nil, a multi-value parameter
// when it is neither nil nor an empty sequence. Outside interactive sessions
// the declared default stands in for a missing value.
//
// A provided value is normalized and validated (element-wise for sequences)
// and returned. Otherwise the engine asks the terminal, writes the answer
// back into the option store so later resolutions observe it, and returns
// it. Required parameters that cannot be asked fail with
// param.ErrMissingRequiredValue.
//
// # Multi-value parameters
//
// Multi-value parameters are collected by asking the same question until a
// blank answer arrives. When the parameter is required, blank answers are
// rejected until one value has been collected; afterwards a blank answer
// ends the list.
//
// Resolution order across parameters is decided by the caller. The engine
// is not safe for concurrent use; one invocation has one thread of control.
package resolve
