// Command find-screenshots recursively scans a directory for phone and
// tablet screenshots and optionally copies or moves them to a destination
// folder.
package main
