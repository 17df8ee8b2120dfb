/*
Package operation implements the batch rename: ordered literal replacement
rules applied to every matching file under a root directory.

	+-------------+
	|   Runner    |
	|  (Driver)   |
	+------+------+
	       |  one rule at a time, in order
	+------+------+
	|  ApplyRule  |
	| (Transform) |
	+------+------+
	       |
	+------+------+
	|   Status    |
	|  (Storage)  |
	+-------------+

🔄 Flow (per rule):
1. Walk the root for files matching the rule's glob
2. Read each file, replace every occurrence of the rule's text
3. Rewrite files whose content changed
4. Report examined/changed counts to the Observer

Rules are not independent. Each one sees what the previous rules wrote, so
the table order is part of the migration. The tree is walked again for every
rule and nothing runs concurrently.
*/
package operation
