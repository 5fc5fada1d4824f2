// Package conv provides checked integer arithmetic for capacity calculations.
//
// Capacity math multiplies element counts by element sizes and adds requested
// headroom to current lengths; both can overflow on adversarial inputs. These
// helpers fail loudly instead of wrapping.
package conv
