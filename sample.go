package main

// sampleSource is compiled when neither an argument nor the manifest names a source file.
const sampleSource = `
struct test {
    a: int,
    b: int,
}

fun substract(a: int, b: int): int {
    const result = a - b;
    return result;
}

fun add(a: int, b: int): int {
    const result = a + b;
    return result;
}

fun main() {
    const test = test { a: 1, b: 2 };
    const result = substract(test.a, test.b);
    var a = 1;
    var b = 2;
    const or = a || b;
    const and = a && b;
    const c = add(a, b);
}
`
