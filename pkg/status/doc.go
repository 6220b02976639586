/*
Package status owns file storage and result wording for i18nsub.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|   Files   |           | Formatter |
	| (Storage) |           | (Wording) |
	+-----------+           +-----------+

🎯 Purpose:
- Reads the target file and writes the transformed buffer back
- Offers a truncating write (the default) and a temp-file-and-rename write
- Backs up and restores the target around a write
- Words the confirmation and summary lines

⚡ Notes:
- WriteFile keeps the permissions of the file it overwrites.
- Errors wrap the underlying *fs.PathError, so errors.Is(err, fs.ErrNotExist) works.

🔍 Example:

	files := status.New(".")

	content, err := files.ReadFile(ctx, "src/pages/Home.tsx")
	if err != nil {
		return err
	}

	if _, err := files.BackupFile(ctx, "src/pages/Home.tsx"); err != nil {
		return err
	}

	err = files.WriteFile(ctx, "src/pages/Home.tsx", content)
*/
package status
