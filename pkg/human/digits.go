package human

// bufSize fits seven digits, the decimal point and one carry digit.
const bufSize = 9

// digitBuffer is filled from the right. buf[start:end] is the rendered number.
type digitBuffer struct {
	buf   [bufSize]byte
	start int
	end   int
	point int // index of '.', or -1
}

func renderDigits(n int64) digitBuffer {
	d := digitBuffer{start: bufSize, end: bufSize, point: -1}
	for i := 0; n > 0; i++ {
		if i == scaleDigits {
			d.prepend('.')
			d.point = d.start
		}
		d.prepend(byte('0' + n%10))
		n /= 10
	}
	return d
}

func (d *digitBuffer) prepend(c byte) {
	d.start--
	d.buf[d.start] = c
}

func (d *digitBuffer) intDigits() int {
	if d.point < 0 {
		return d.end - d.start
	}
	return d.point - d.start
}

func (d *digitBuffer) digitCount() int {
	n := d.end - d.start
	if d.point >= 0 && d.point < d.end {
		n--
	}
	return n
}

// index maps the j-th digit, counted from the left, to its position in buf.
func (d *digitBuffer) index(j int) int {
	i := d.start + j
	if d.point >= 0 && i >= d.point {
		i++
	}
	return i
}

// round keeps the first keep digits, rounding half-up on the first dropped one.
func (d *digitBuffer) round(keep int) {
	if d.digitCount() <= keep {
		return
	}
	cut := d.index(keep)
	up := d.buf[cut] >= '5'
	d.end = cut
	if up {
		d.carry()
	}
}

func (d *digitBuffer) carry() {
	for i := d.end - 1; i >= d.start; i-- {
		if i == d.point {
			continue
		}
		if d.buf[i] != '9' {
			d.buf[i]++
			return
		}
		d.buf[i] = '0'
	}
	d.prepend('1')
}

// trimFraction drops trailing fractional zeros and a dangling point.
func (d *digitBuffer) trimFraction() {
	if d.point < 0 {
		return
	}
	for d.end > d.point+1 && d.buf[d.end-1] == '0' {
		d.end--
	}
	if d.end == d.point+1 {
		d.end = d.point
		d.point = -1
	}
}

func (d *digitBuffer) String() string {
	return string(d.buf[d.start:d.end])
}
