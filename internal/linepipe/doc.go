// Package linepipe is a lazy, pull-based pipeline over input lines.
//
// Lines are read into *strbuf.String values so the string operations can
// run on them in place:
//
//	p := linepipe.FromReader(os.Stdin)
//	p = linepipe.Map(p, trimLine)
//	err := linepipe.Drain(p, writeLine).Run(ctx)
//
// Nothing is read until Drain pulls values.
package linepipe
