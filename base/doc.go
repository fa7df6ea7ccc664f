/*
Package base provides base data structures and functions for survsets.

The base data structures and functions include:

* Random Generator
*/
package base
