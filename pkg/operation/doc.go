/*
Package operation implements the substitution run.

	+-------------+
	|    Read     |
	|  (status)   |
	+------+------+
	       |
	+------+------+
	|  Transform  |
	|   (text)    |
	+------+------+
	       |
	+------+------+
	|    Write    |
	|  (status)   |
	+------+------+
	       |
	+------+------+
	|   Report    |
	|    (log)    |
	+-------------+

🎯 Purpose:
- Reads the whole target into memory
- Applies every rule once, in order, on the evolving buffer
- Writes the buffer back to the same path, even when nothing matched
- Prints one confirmation line

🔄 Modes:
- Strict: any rule that matched nothing fails the run before the write
- DryRun: prints a line diff instead of writing
- Backup: keeps <target>.bak and restores it if the write fails
- Atomic: temp file and rename instead of a truncating write

🔍 Example:

	r, err := operation.New(operation.Options{
		Target:  rules.DefaultTarget,
		Rules:   rules.Home(),
		Files:   status.New("."),
		Console: log.New(os.Stdout, zerolog.Nop()),
	})
	if err != nil {
		return err
	}
	report, err := r.Run(ctx)
*/
package operation
