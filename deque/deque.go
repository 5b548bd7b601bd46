/**
 *
 * 利用数组实现双端队列，用于保存最近若干轮的浓度值
 * 容量固定，队列满时新增操作直接忽略，由调用方先删除再新增
 *
 */

package deque

type Deque interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的数值
	Get(i int) float64

	// 队头、队尾元素
	First() float64
	Last() float64

	// 正向遍历
	Traverse(f func(i int, val float64))

	// 在队列结尾增加一个元素
	AddLast(val float64)

	// 在队列结尾删除一个元素
	RemoveLast()

	// 在队列头部增加一个元素
	AddFirst(val float64)

	// 在队列头部删除一个元素
	RemoveFirst()

	IsFull() bool

	IsEmpty() bool
}
