// The font subpackage contains helper methods to parse fonts and
// obtain information from them (name, family, missing runes), alongside
// a path-keyed [Library] that avoids parsing the same file twice.
package font
