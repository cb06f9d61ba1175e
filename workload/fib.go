// Package workload holds the units of work measured by the benc command.
package workload

// Fib returns the nth Fibonacci number using the exponential recursive
// definition, which makes the cost grow quickly with n.
func Fib(n int) int {
	if n < 2 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}
