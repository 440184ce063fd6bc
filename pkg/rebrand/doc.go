/*
Package rebrand rewrites project identifiers in place across a file tree.

	+-------------+
	|    Walk     |
	|  (prune)    |
	+------+------+
	       |
	+------+------+
	|    Visit    |
	| (classify)  |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (in place)  |
	+------+------+

🔄 Flow:
1. Walks the root top-down, pruning excluded directory names before reading them
2. Classifies each file: irregular, self, binary or text
3. Applies the ordered replacement table to text files
4. Writes back and reports only when the content changed

⚡ Guarantees:
- Binary (non UTF-8) files are never rewritten
- Symlink targets are never followed or altered
- A second run over the same tree writes nothing
*/
package rebrand
