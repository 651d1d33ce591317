package pdt

/* classify.go contains the PDG-code classification rules. All of them work on
|id|, so particles and antiparticles are classified the same way. */

// IsLepton returns true for charged leptons and neutrinos, including the
// fourth generation.
func IsLepton(id int) bool {
	a := abs(id)
	return a >= 11 && a <= 18
}

// IsQuark returns true for d through b' quarks.
func IsQuark(id int) bool {
	a := abs(id)
	return a != 0 && a <= 8
}

func IsGluon(id int) bool { return abs(id) == 21 }

// IsDiquark returns true for codes of the form 1000*q1 + 100*q2 + 2s+1.
func IsDiquark(id int) bool {
	a := abs(id)
	return a > 1000 && a < 10000 && (a/10)%10 == 0
}

// IsParton returns true for gluons, the six quarks, and diquarks made of them.
func IsParton(id int) bool {
	a := abs(id)
	return a == 21 || (a != 0 && a <= 6) ||
		(a > 1000 && a < 5510 && (a/10)%10 == 0)
}

// IsHadron returns true for mesons and baryons.
func IsHadron(id int) bool {
	a := abs(id)
	if a <= 100 || (a >= 1000000 && a <= 9000000) || a >= 9900000 {
		return false
	}
	if a == 130 || a == 310 { return true }
	if a%10 == 0 || (a/10)%10 == 0 || (a/100)%10 == 0 { return false }
	return true
}

func IsMeson(id int) bool {
	a := abs(id)
	if a <= 100 || (a >= 1000000 && a <= 9000000) || a >= 9900000 {
		return false
	}
	if a == 130 || a == 310 { return true }
	if a%10 == 0 || (a/10)%10 == 0 || (a/100)%10 == 0 || (a/1000)%10 != 0 {
		return false
	}
	return true
}

func IsBaryon(id int) bool {
	a := abs(id)
	if a <= 1000 || (a >= 1000000 && a <= 9000000) || a >= 9900000 {
		return false
	}
	if a%10 == 0 || (a/10)%10 == 0 || (a/100)%10 == 0 || (a/1000)%10 == 0 {
		return false
	}
	return true
}
