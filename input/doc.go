// Package input models terminal input events and a FIFO queue for
// feeding them to an application, simulated or real.
package input
