// Package report renders solver results for people: a step-by-step leg
// table and a plot of the neural ring embedding.
//
// Nothing here affects solving; every function reads a finished result.
package report
