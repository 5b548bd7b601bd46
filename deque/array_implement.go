package deque

type ArrDeque struct {
	arr []float64

	// 队头下标
	start int
	// 元素个数
	size int
	// 容量
	capacity int
}

// 工厂方法
func NewArrDeque(capacity int) *ArrDeque {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque{
		arr:      make([]float64, capacity),
		capacity: capacity,
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

// 环形数组下标
func (ad *ArrDeque) index(i int) int {
	return (ad.start + i) % ad.capacity
}

func (ad *ArrDeque) Get(i int) float64 {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque) First() float64 {
	return ad.Get(0)
}

func (ad *ArrDeque) Last() float64 {
	return ad.Get(ad.size - 1)
}

func (ad *ArrDeque) Traverse(f func(i int, val float64)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[ad.index(i)])
	}
}

func (ad *ArrDeque) AddLast(val float64) {
	if ad.IsFull() {
		return
	}
	ad.arr[ad.index(ad.size)] = val
	ad.size++
}

func (ad *ArrDeque) RemoveLast() {
	if ad.IsEmpty() {
		return
	}
	ad.size--
}

func (ad *ArrDeque) AddFirst(val float64) {
	if ad.IsFull() {
		return
	}
	ad.start = (ad.start - 1 + ad.capacity) % ad.capacity
	ad.arr[ad.start] = val
	ad.size++
}

func (ad *ArrDeque) RemoveFirst() {
	if ad.IsEmpty() {
		return
	}
	ad.start = (ad.start + 1) % ad.capacity
	ad.size--
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == ad.capacity
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}
