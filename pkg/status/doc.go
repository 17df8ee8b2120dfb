/*
Package status owns every file system access renamerc makes.

	+-------------+
	|   Status    |
	|  (Storage)  |
	+------+------+
	       |
	+------+------+
	|  Walk/Read  |
	|  /Rewrite   |
	+-------------+

🎯 Purpose:
- Enumerates the files under a root that match a base-name glob
- Reads file content as raw bytes
- Rewrites files in place through a temp file and rename

The operation package decides what to write; this package only knows how.
A root that does not exist is an empty tree, not an error.
*/
package status
