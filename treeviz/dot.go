package treeviz

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/ordmap/sentinel"
	"golang.org/x/net/html"
)

type nodeids[P any] struct {
	idTable map[*sentinel.Node[P]]int
	max     int
}

func newtable[P any]() nodeids[P] {
	return nodeids[P]{
		idTable: make(map[*sentinel.Node[P]]int),
		max:     1,
	}
}

func (ids *nodeids[P]) alloc(node *sentinel.Node[P]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDot outputs the structure of tree t in Graphviz DOT format.
//
// The header node is drawn as a box holding the element count, with dashed
// edges to the root and to the cached leftmost and rightmost nodes. Missing
// children are drawn as small empty circles, so left and right children can be
// told apart.
func WriteDot[P any](w io.Writer, t *sentinel.Tree[P], label func(P) string) error {
	if t == nil {
		return sentinel.ErrNilTree
	}
	if label == nil {
		label = func(p P) string { return fmt.Sprint(p) }
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	fmt.Fprintf(bw, "\t\"0\" [label=<header<br/><i>%s</i>> %s];\n",
		html.EscapeString(humanize.Comma(int64(t.Len()))), headerDotStyles)
	if !t.IsEmpty() {
		ids := newtable[P]()
		var nodelist, edgelist []string
		root := t.Root()
		edgelist = append(edgelist, fmt.Sprintf("\t\"0\" -> \"%d\" [style=dashed,label=root];\n", ids.alloc(root)))
		stack := []*sentinel.Node[P]{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ID := ids.alloc(n)
			nodelist = append(nodelist, fmt.Sprintf("\t\"%d\" [label=<%s> %s];\n",
				ID, html.EscapeString(label(n.Payload)), nodeDotStyles))
			for i, c := range [2]*sentinel.Node[P]{t.Left(n), t.Right(n)} {
				if c == nil {
					nilid := -(2*ID + i)
					nodelist = append(nodelist, fmt.Sprintf("\t\"%d\" %s;\n", nilid, emptyNode))
					edgelist = append(edgelist, fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ID, nilid))
					continue
				}
				edgelist = append(edgelist, fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ID, ids.alloc(c)))
				stack = append(stack, c)
			}
		}
		edgelist = append(edgelist,
			fmt.Sprintf("\t\"0\" -> \"%d\" [style=dashed,label=min];\n", ids.alloc(t.Leftmost())),
			fmt.Sprintf("\t\"0\" -> \"%d\" [style=dashed,label=max];\n", ids.alloc(t.Rightmost())))
		for _, s := range nodelist {
			bw.WriteString(s)
		}
		for _, s := range edgelist {
			bw.WriteString(s)
		}
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

const headerDotStyles = `,shape=box,style=filled,fillcolor="#ffddcc"`

const nodeDotStyles = `,shape=circle,style=filled,color=black,fillcolor="#a3d7e4"`

const emptyNode = `[label="",color=black,shape=circle,fixedsize=true,width=.2]`
